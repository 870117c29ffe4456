package square

import "strings"

const (
	CatalogTypeItem          = "ITEM"
	CatalogTypeItemVariation = "ITEM_VARIATION"
)

type Booking struct {
	ID                  string    `json:"id"`
	Status              string    `json:"status"`
	StartAt             string    `json:"start_at"`
	LocationID          string    `json:"location_id"`
	CustomerID          string    `json:"customer_id"`
	CustomerNote        string    `json:"customer_note"`
	AppointmentSegments []Segment `json:"appointment_segments"`
}

type Segment struct {
	DurationMinutes         int    `json:"duration_minutes"`
	ServiceVariationID      string `json:"service_variation_id"`
	ServiceVariationVersion int64  `json:"service_variation_version"`
	TeamMemberID            string `json:"team_member_id"`
}

type TeamMember struct {
	ID          string `json:"id"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
}

// Name prefers the full name, then the display name, then the id.
func (t TeamMember) Name() string {
	if name := strings.TrimSpace(t.GivenName + " " + t.FamilyName); name != "" {
		return name
	}

	if t.DisplayName != "" {
		return t.DisplayName
	}

	return t.ID
}

type Customer struct {
	ID           string `json:"id"`
	GivenName    string `json:"given_name"`
	FamilyName   string `json:"family_name"`
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
}

// DisplayName prefers the full name, then email, then phone. Empty when none is set.
func (c Customer) DisplayName() string {
	if name := strings.TrimSpace(c.GivenName + " " + c.FamilyName); name != "" {
		return name
	}

	if c.EmailAddress != "" {
		return c.EmailAddress
	}

	return c.PhoneNumber
}

type CatalogObject struct {
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	ItemData          *ItemData          `json:"item_data,omitempty"`
	ItemVariationData *ItemVariationData `json:"item_variation_data,omitempty"`
}

type ItemData struct {
	Name string `json:"name"`
}

type ItemVariationData struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

type CatalogObjectResponse struct {
	Object         CatalogObject   `json:"object"`
	RelatedObjects []CatalogObject `json:"related_objects"`
}

// ServiceName resolves the display name of a service variation: the variation name, then the
// parent item's name from the related objects, then any related item name.
func (r CatalogObjectResponse) ServiceName() string {
	obj := r.Object

	switch obj.Type {
	case CatalogTypeItemVariation:
		if obj.ItemVariationData == nil {
			break
		}

		if obj.ItemVariationData.Name != "" {
			return obj.ItemVariationData.Name
		}

		for _, related := range r.RelatedObjects {
			if related.ID == obj.ItemVariationData.ItemID && related.ItemData != nil && related.ItemData.Name != "" {
				return related.ItemData.Name
			}
		}
	case CatalogTypeItem:
		if obj.ItemData != nil && obj.ItemData.Name != "" {
			return obj.ItemData.Name
		}
	}

	for _, related := range r.RelatedObjects {
		if related.Type == CatalogTypeItem && related.ItemData != nil && related.ItemData.Name != "" {
			return related.ItemData.Name
		}
	}

	return ""
}

type Error struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

type errorResponse struct {
	Errors []Error `json:"errors"`
}

func (e errorResponse) String() string {
	parts := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		parts = append(parts, err.Code+": "+err.Detail)
	}

	return strings.Join(parts, "; ")
}

type listBookingsResponse struct {
	Bookings []Booking `json:"bookings"`
	Cursor   string    `json:"cursor"`
}

type searchTeamMembersRequest struct {
	Query  teamMemberQuery `json:"query"`
	Limit  int             `json:"limit"`
	Cursor string          `json:"cursor,omitempty"`
}

type teamMemberQuery struct {
	Filter teamMemberFilter `json:"filter"`
}

type teamMemberFilter struct {
	LocationIDs []string `json:"location_ids,omitempty"`
	Status      string   `json:"status,omitempty"`
}

type searchTeamMembersResponse struct {
	TeamMembers []TeamMember `json:"team_members"`
	Cursor      string       `json:"cursor"`
}

type retrieveCustomerResponse struct {
	Customer Customer `json:"customer"`
}
