package entities

// NavigationState is the observable state of the navigation controller.
// PendingTarget is non-zero only while a protected-page redirect is waiting
// for the user to authenticate; it is always a protected page.
type NavigationState struct {
	CurrentPage   Page
	PendingTarget Page
}
