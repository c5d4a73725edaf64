// Package userdirectory implements the user directory feature slice:
// it fetches the remote user list through a hook, projects the payload into
// the rendered view model, and hands the view to the injected renderer.
package userdirectory
