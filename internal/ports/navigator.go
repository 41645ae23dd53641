package ports

type Route string

const (
	RouteHome    Route = "/"
	RouteSignIn  Route = "/signin"
	RouteSignUp  Route = "/signup"
	RouteProfile Route = "/profile"
)

// Navigator moves the view layer to another entry point.
type Navigator interface {
	Navigate(route Route)
}

type NavigatorFunc func(route Route)

func (f NavigatorFunc) Navigate(route Route) {
	f(route)
}
