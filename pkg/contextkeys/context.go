package contextkeys

// Custom type so the key cannot collide with other context values.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB (the pool,
// or a test transaction) is stored in the context.
const DBContextKey = contextKey("db")
