// Package common contains shared constants, sentinel errors and small helpers
// used across Fundraise components.
package common

// AppName is shown in the menu banner and the farewell message.
const AppName = "Fundraise"

// SaltSize is the number of random bytes used to salt password digests.
const SaltSize = 16
