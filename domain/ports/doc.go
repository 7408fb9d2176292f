// Package ports defines the interfaces between the host runtime and
// the programs it dispatches to. Implementations live in the programs
// and host packages.
package ports
