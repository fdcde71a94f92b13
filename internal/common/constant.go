package common

// AuthorizationHeaderName is the HTTP header carrying the session token on
// inbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the required scheme prefix of the Authorization header,
// including the trailing space.
const BearerPrefix = "Bearer "
