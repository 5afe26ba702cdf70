package viewcache

import (
	"dashboard-service/internal/app/models"
	"strings"
)

const dashboardRoot = "/dashboard"

// RouteFor maps a logical resource to the dashboard view it backs. Unknown
// kinds and resources missing a required id map to "".
func RouteFor(resource models.InvalidationResource) string {
	switch resource.Kind {
	case models.InvalidateReservation:
		return withID("/reservations", resource.ID)
	case models.InvalidateUser:
		return withID("/users", resource.ID)
	case models.InvalidateUserRole:
		if resource.ID == "" {
			return ""
		}
		return dashboardRoot + "/" + resource.ID
	case models.InvalidateProfile:
		return dashboardRoot + "/profile"
	case models.InvalidatePharmacies:
		return dashboardRoot + "/pharmacies"
	case models.InvalidatePharmacy:
		return withID("/pharmacies", resource.ID)
	case models.InvalidateDoctor:
		return withID("/doctors", resource.ID)
	case models.InvalidatePackages:
		return dashboardRoot + "/packages"
	case models.InvalidatePath:
		return resource.ID
	default:
		return ""
	}
}

// RoutesFor returns the distinct routes of set in first-seen order.
func RoutesFor(set models.InvalidationSet) []string {
	seen := make(map[string]bool, len(set))
	routes := make([]string, 0, len(set))
	for _, resource := range set {
		route := RouteFor(resource)
		if route == "" || seen[route] {
			continue
		}
		seen[route] = true
		routes = append(routes, route)
	}
	return routes
}

// Covers reports whether purging target also purges route: the route itself
// or any view nested below it.
func Covers(target, route string) bool {
	if target == route {
		return true
	}
	return strings.HasPrefix(route, strings.TrimRight(target, "/")+"/")
}

func withID(section, id string) string {
	if id == "" {
		return ""
	}
	return dashboardRoot + section + "/" + id
}
