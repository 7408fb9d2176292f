// Package entities provides the core domain entities of the SDK:
// identities and the account handle programs operate on.
// Program-specific record types belong to the program packages.
package entities
