// Package services holds the Fundraise application logic: registration and
// login (AuthService) and project management (ProjectService).
//
// Services load whole collections from the repositories, apply one operation
// to the loaded slice and save it back. They return sentinel errors from
// internal/common and *validation.Error for rejected input; printing is left
// to the CLI.
package services
