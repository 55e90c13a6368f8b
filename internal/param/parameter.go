package param

// Parameter is a named scalar slot on a unit.
type Parameter struct {
	name   string
	link   Link
	handle Handle
}

// New returns an unbound parameter that owns a slot defaulting to def.
func New(name string, def float32) *Parameter {
	return &Parameter{name: name, link: Value(def)}
}

// Name is the local name, unique within the owning unit.
func (p *Parameter) Name() string { return p.name }

// Link returns the declared binding intent.
func (p *Parameter) Link() Link { return p.link }

// SetValue declares an owned slot starting at v. Effective on the next bind.
func (p *Parameter) SetValue(v float32) { p.link = Value(v) }

// SetLink declares an alias of target. Effective on the next bind.
func (p *Parameter) SetLink(target string) { p.link = Reference(target) }

// SetLinkTo replaces the declared intent wholesale.
func (p *Parameter) SetLinkTo(l Link) { p.link = l }

// IsFree reports whether the parameter will own a slot at the next bind.
func (p *Parameter) IsFree() bool { return p.link.IsValue() }

// IsUnbound reports whether no live storage handle is resolved.
func (p *Parameter) IsUnbound() bool { return !p.handle.Valid() }

// Handle returns the resolved storage handle.
func (p *Parameter) Handle() Handle { return p.handle }

// Bind points the parameter at h.
func (p *Parameter) Bind(h Handle) { p.handle = h }

// Unbind clears the resolved storage.
func (p *Parameter) Unbind() { p.handle = Handle{} }

// Get reads the current value; unbound parameters read as 0.
func (p *Parameter) Get() float32 { return p.handle.Load() }

// Set writes the current value through the resolved storage.
func (p *Parameter) Set(v float32) { p.handle.Store(v) }

// Add increments the current value by d.
func (p *Parameter) Add(d float32) { p.handle.Store(p.handle.Load() + d) }
