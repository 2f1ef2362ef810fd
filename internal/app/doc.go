// Package app encapsulates the application's dependencies, configuration and
// lifecycle: an isolated logger, a registry bootstrapped from the compiled-in
// module set, the hub locator, and the module builder on top of them.
package app
