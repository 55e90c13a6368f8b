// Package config defines the format-agnostic patch model, the Loader
// interface that format-specific packages implement, and the audio Params
// threaded into every unit.
//
// The `config.Patch` is the single description the builder turns into a node
// tree and the studio serialises back out. Concrete loaders, such as HCL, live
// in separate packages.
package config
