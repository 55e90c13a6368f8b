// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the command lifecycle (load, build, bind,
// then render, play, inspect, analyze or serve an editor), decoupled from
// any specific entrypoint like a CLI.
package app
