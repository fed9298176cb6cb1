// Package users stores the registered user collection.
//
// The collection is always read and written as a whole: Load returns every
// record in stored order and Save replaces the stored records with the given
// slice. Two backends are provided, a JSON-lines file and a SQLite table.
package users
