package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Specialties is stored by the collaborator either as one string or as a
// list of strings. A single string is kept as a one element list.
type Specialties []string

func (s *Specialties) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = fromSingle(single)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("specialties must be a string or a list of strings: %w", err)
	}
	*s = list
	return nil
}

func (s *Specialties) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*s = nil
	case bsontype.String:
		*s = fromSingle(raw.StringValue())
	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return err
		}
		list := make([]string, 0, len(values))
		for _, value := range values {
			if str, ok := value.StringValueOK(); ok {
				list = append(list, str)
			}
		}
		*s = list
	default:
		return fmt.Errorf("specialties cannot be decoded from bson %s", t)
	}
	return nil
}

func fromSingle(value string) Specialties {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return Specialties{value}
}

// Fee is a consultation fee sent as a string or as a number.
type Fee string

func (f *Fee) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = Fee(str)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("consultation fee must be a string or a number: %w", err)
	}
	*f = Fee(number.String())
	return nil
}

func (f *Fee) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*f = ""
	case bsontype.String:
		*f = Fee(raw.StringValue())
	case bsontype.Double:
		*f = Fee(strconv.FormatFloat(raw.Double(), 'f', -1, 64))
	case bsontype.Int32:
		*f = Fee(strconv.FormatInt(int64(raw.Int32()), 10))
	case bsontype.Int64:
		*f = Fee(strconv.FormatInt(raw.Int64(), 10))
	default:
		return fmt.Errorf("consultation fee cannot be decoded from bson %s", t)
	}
	return nil
}
