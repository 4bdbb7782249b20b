package dato

import "time"

// JSON:API document envelopes.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

type oneEnvelope[T any] struct {
	Data T `json:"data"`
}

// apiRef is a JSON:API resource identifier.
type apiRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// apiRelationship is a to-one relationship; Data is nil when unset.
type apiRelationship struct {
	Data *apiRef `json:"data"`
}

// apiItemType is a content model.
type apiItemType struct {
	ID         string `json:"id"`
	Attributes struct {
		Name   string `json:"name"`
		APIKey string `json:"api_key"`
	} `json:"attributes"`
	Relationships struct {
		TitleField             apiRelationship `json:"title_field"`
		PresentationTitleField apiRelationship `json:"presentation_title_field"`
	} `json:"relationships"`
}

// apiField is one field of a content model.
type apiField struct {
	ID         string `json:"id"`
	Attributes struct {
		Label     string `json:"label"`
		APIKey    string `json:"api_key"`
		FieldType string `json:"field_type"`
	} `json:"attributes"`
}

// apiItem is a record; attributes hold field values keyed by API key.
type apiItem struct {
	ID            string         `json:"id"`
	Attributes    map[string]any `json:"attributes"`
	Relationships struct {
		ItemType apiRelationship `json:"item_type"`
	} `json:"relationships"`
	Meta struct {
		UpdatedAt        time.Time  `json:"updated_at"`
		PublishedAt      *time.Time `json:"published_at"`
		FirstPublishedAt *time.Time `json:"first_published_at"`
	} `json:"meta"`
}

// apiUser is a collaborator.
type apiUser struct {
	ID         string `json:"id"`
	Attributes struct {
		FullName *string `json:"full_name"`
		Email    string  `json:"email"`
	} `json:"attributes"`
	Relationships struct {
		Role apiRelationship `json:"role"`
	} `json:"relationships"`
	Meta struct {
		LastAccess *time.Time `json:"last_access"`
	} `json:"meta"`
}

// apiRole is a permission set.
type apiRole struct {
	ID         string `json:"id"`
	Attributes struct {
		Name string `json:"name"`
	} `json:"attributes"`
}

// apiAuditEvent is one audit log entry.
type apiAuditEvent struct {
	ID         string `json:"id"`
	Attributes struct {
		ActionName string `json:"action_name"`
		Actor      struct {
			ID   string `json:"id"`
			Type string `json:"type"`
			Name string `json:"name"`
		} `json:"actor"`
		Request struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"request"`
	} `json:"attributes"`
	Meta struct {
		OccurredAt time.Time `json:"occurred_at"`
	} `json:"meta"`
}

// auditQueryRequest is the body of POST /audit-log-events/query.
type auditQueryRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			Filter      string `json:"filter"`
			DetailedLog bool   `json:"detailed_log"`
		} `json:"attributes"`
	} `json:"data"`
}

// apiErrorEnvelope is the body of a failed request.
type apiErrorEnvelope struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Code string `json:"code"`
		} `json:"attributes"`
	} `json:"data"`
}
