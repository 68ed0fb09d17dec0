package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	Auth *AuthHandler
	User *UserHandler
	Plan *PlanHandler
}
