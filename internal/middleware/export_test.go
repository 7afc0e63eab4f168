package middleware

// Test-only access to unexported identifiers for the external middleware_test package.
var (
	HTTPRequestsTotal    = httpRequestsTotal
	HTTPErrorsTotal      = httpErrorsTotal
	HTTPInFlightRequests = httpInFlightRequests
	RouteTemplate        = routeTemplate
)
