package usecase

import (
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/ettle/strcase"
)

// ParseProperties maps the supplied property flags onto API field names.
// It returns None when the schema is empty or no schema flag was supplied;
// fields keep schema declaration order.
func ParseProperties(schema entity.PropertySchema, flags repository.FlagBag) entity.PropertySet {
	if len(schema) == 0 || flags == nil {
		return entity.NoProperties()
	}

	var props entity.Properties
	for _, pf := range schema {
		value, ok := flags.Lookup(pf.Flag)
		if !ok {
			continue
		}
		props = append(props, entity.Property{Field: FieldName(pf), Value: value})
	}

	if len(props) == 0 {
		return entity.NoProperties()
	}
	return entity.SomeProperties(props)
}

// FieldName returns the API field for a property flag, deriving the
// camelCase form of the flag name when no field is declared.
func FieldName(pf entity.PropertyFlag) string {
	if pf.Field != "" {
		return pf.Field
	}
	return strcase.ToCamel(pf.Flag)
}
