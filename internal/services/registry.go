package services

import "workzo_backend/internal/email"

// ServiceContainer bundles the application services for wiring in app and
// tests.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	JobService          JobService
	ApplicationService  ApplicationService
	JobStatusService    JobStatusService
	ReviewService       ReviewService
	NotificationService NotificationService
	EmailProvider       email.Provider
}
