package common

// AccessTokenHeaderName is the HTTP header used to carry the access token
// on requests to protected endpoints.
const AccessTokenHeaderName = "x-access-token"
