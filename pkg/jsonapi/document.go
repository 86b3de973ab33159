package jsonapi

import "time"

// MediaType is the content type of every request and response body.
const MediaType = "application/vnd.api+json"

// Document is the top-level wire object.
type Document struct {
	Data Resource `json:"data"`
}

// Resource is one typed resource with its attributes and relationships.
type Resource struct {
	Type          string                  `json:"type"`
	Attributes    map[string]any          `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// Relationship links a resource to another resource by identifier.
type Relationship struct {
	Data ResourceIdentifier `json:"data"`
}

// ResourceIdentifier names a related resource.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// NewResource creates an empty resource of the given type.
func NewResource(resourceType string) Resource {
	return Resource{
		Type:       resourceType,
		Attributes: make(map[string]any),
	}
}

// NewDocument wraps a resource into a document.
func NewDocument(res Resource) Document {
	return Document{Data: res}
}

// SetAttr records an attribute, dropping absent values so they are omitted
// from the payload instead of being emitted as null: empty strings, nil
// pointers and empty maps all count as absent. Pointers are dereferenced and
// times rendered as RFC 3339.
func (r *Resource) SetAttr(name string, value any) {
	if r.Attributes == nil {
		r.Attributes = make(map[string]any)
	}
	switch v := value.(type) {
	case nil:
		return
	case string:
		if v == "" {
			return
		}
		r.Attributes[name] = v
	case *bool:
		if v == nil {
			return
		}
		r.Attributes[name] = *v
	case *int:
		if v == nil {
			return
		}
		r.Attributes[name] = *v
	case *time.Time:
		if v == nil {
			return
		}
		r.Attributes[name] = v.Format(time.RFC3339)
	case time.Time:
		r.Attributes[name] = v.Format(time.RFC3339)
	case map[string]string:
		if len(v) == 0 {
			return
		}
		r.Attributes[name] = v
	default:
		r.Attributes[name] = value
	}
}

// SetRelationship links a related resource by type and id.
func (r *Resource) SetRelationship(name, resourceType, id string) {
	if r.Relationships == nil {
		r.Relationships = make(map[string]Relationship)
	}
	r.Relationships[name] = Relationship{
		Data: ResourceIdentifier{Type: resourceType, ID: id},
	}
}
