package helpers

type contextKey string

// ContextKeyCartID carries the session-resolved cart ID through the
// request; handlers pass it down explicitly instead of reading ambient
// session state.
const ContextKeyCartID contextKey = "cartID"
