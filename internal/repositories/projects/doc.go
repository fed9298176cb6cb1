// Package projects stores the fundraising project collection.
//
// Like users, the collection is loaded and saved as a whole. Targets are kept
// as canonical decimal strings and dates as YYYY-MM-DD in both backends.
package projects
