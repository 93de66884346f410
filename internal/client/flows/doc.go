// Package flows contains the headless controllers behind the client's
// screens.
//
//   - Registration validates a UserDraft and creates the user, navigating
//     back on success.
//   - Settings loads the signed-in user on Mount, lets the password be
//     edited and saved, shows a success/error banner for a fixed time and
//     offers logout.
//
// Controllers receive their collaborators (API client, app context,
// navigator, clock, logger) through constructors, are safe for concurrent
// use, and never retry a request.
package flows
