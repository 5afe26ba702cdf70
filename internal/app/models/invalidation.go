package models

import "time"

type InvalidationKind string

const (
	InvalidateReservation InvalidationKind = "reservation"
	InvalidateUser        InvalidationKind = "user"
	InvalidateUserRole    InvalidationKind = "user_role"
	InvalidateProfile     InvalidationKind = "profile"
	InvalidatePharmacies  InvalidationKind = "pharmacies"
	InvalidatePharmacy    InvalidationKind = "pharmacy"
	InvalidateDoctor      InvalidationKind = "doctor"
	InvalidatePackages    InvalidationKind = "packages"
	InvalidatePath        InvalidationKind = "path"
)

// InvalidationResource names a logical view that became stale. ID carries the
// entity id, the role, or the literal path depending on Kind.
type InvalidationResource struct {
	Kind InvalidationKind `json:"kind"`
	ID   string           `json:"id,omitempty"`
}

type InvalidationSet []InvalidationResource

func ReservationResource(id string) InvalidationResource {
	return InvalidationResource{Kind: InvalidateReservation, ID: id}
}

// UserResource names the single-user view, whatever role the user has.
func UserResource(id string) InvalidationResource {
	return InvalidationResource{Kind: InvalidateUser, ID: id}
}

func UserRoleResource(role string) InvalidationResource {
	return InvalidationResource{Kind: InvalidateUserRole, ID: role}
}

func ProfileResource() InvalidationResource {
	return InvalidationResource{Kind: InvalidateProfile}
}

func PharmaciesResource() InvalidationResource {
	return InvalidationResource{Kind: InvalidatePharmacies}
}

func PharmacyResource(id string) InvalidationResource {
	return InvalidationResource{Kind: InvalidatePharmacy, ID: id}
}

func DoctorResource(id string) InvalidationResource {
	return InvalidationResource{Kind: InvalidateDoctor, ID: id}
}

func PackagesResource() InvalidationResource {
	return InvalidationResource{Kind: InvalidatePackages}
}

func PathResource(path string) InvalidationResource {
	return InvalidationResource{Kind: InvalidatePath, ID: path}
}

func (s InvalidationSet) IsEmpty() bool {
	return len(s) == 0
}

// InvalidationEvent is fanned out to other renderers after stale views were
// purged locally.
type InvalidationEvent struct {
	RequestID string          `json:"request_id"`
	Routes    []string        `json:"routes"`
	Resources InvalidationSet `json:"resources"`
	IssuedAt  time.Time       `json:"issued_at"`
}
