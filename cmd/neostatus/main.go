// Command neostatus runs the status-LED controller against the simulated
// FIFO board and drives it from the host side.
//
// Usage:
//
//	neostatus run [flags]              run the controller loop
//	neostatus send INDEX COLOR         set one status slot
//	neostatus press [--duration 50ms]  press the button, print the macro
//	neostatus watch                    print strip frames as they latch
//	neostatus config                   print the resolved configuration
//
// Every subcommand reads the same configuration: --config names a TOML
// file, NEOSTATUS_* environment variables override it, and flags override
// both.
package main

func main() {
	Execute()
}
