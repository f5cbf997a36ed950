// Package app wires the node modules, their manifests, logging and locale
// into one App, decoupled from any specific entrypoint like the CLI or a
// host plug-in bridge.
package app
