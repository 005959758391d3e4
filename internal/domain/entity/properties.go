package entity

// PropertyFlag declares one command-line flag that maps onto an API field.
// An empty Field is derived from the flag name.
type PropertyFlag struct {
	Flag        string
	Field       string
	Description string
}

// PropertySchema is the ordered flag-to-field mapping of a concrete command.
type PropertySchema []PropertyFlag

// Property is a single field value destined for an update request.
type Property struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Properties keeps update fields in schema declaration order.
type Properties []Property

// Get returns the value of field, if present.
func (p Properties) Get(field string) (string, bool) {
	for _, prop := range p {
		if prop.Field == field {
			return prop.Value, true
		}
	}
	return "", false
}

// Map returns the properties as a field-to-value map.
func (p Properties) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, prop := range p {
		m[prop.Field] = prop.Value
	}
	return m
}

// PropertySet is either Some(properties) or None. The zero value is None.
type PropertySet struct {
	props   Properties
	present bool
}

// SomeProperties wraps props, including an empty slice, as a present set.
func SomeProperties(props Properties) PropertySet {
	return PropertySet{props: props, present: true}
}

// NoProperties is the absent set.
func NoProperties() PropertySet {
	return PropertySet{}
}

// Get returns the properties and whether any were supplied.
func (s PropertySet) Get() (Properties, bool) {
	return s.props, s.present
}

// IsNone reports whether the set is absent.
func (s PropertySet) IsNone() bool {
	return !s.present
}
