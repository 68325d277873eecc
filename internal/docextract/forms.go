// internal/docextract/forms.go
package docextract

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// FormField is one extracted key/value pair.
type FormField struct {
	Key   string
	Value string
}

// ParseFormFields reconstructs key/value pairs from the Textract block graph:
// KEY_VALUE_SET blocks tagged KEY point at VALUE blocks through VALUE
// relationships, and both sides assemble their text from CHILD word blocks.
func ParseFormFields(blocks []types.Block) []FormField {
	byID := make(map[string]types.Block, len(blocks))
	for _, b := range blocks {
		if b.Id != nil {
			byID[*b.Id] = b
		}
	}

	var fields []FormField
	for _, b := range blocks {
		if b.BlockType != types.BlockTypeKeyValueSet || !hasEntityType(b, types.EntityTypeKey) {
			continue
		}

		key := blockText(b, byID)
		value := ""
		for _, rel := range b.Relationships {
			if rel.Type != types.RelationshipTypeValue {
				continue
			}
			for _, id := range rel.Ids {
				if vb, ok := byID[id]; ok {
					value = blockText(vb, byID)
				}
			}
		}

		if key != "" {
			fields = append(fields, FormField{Key: key, Value: value})
		}
	}
	return fields
}

func hasEntityType(b types.Block, et types.EntityType) bool {
	for _, t := range b.EntityTypes {
		if t == et {
			return true
		}
	}
	return false
}

// blockText joins the CHILD words of a block in document order.
func blockText(b types.Block, byID map[string]types.Block) string {
	var words []string
	for _, rel := range b.Relationships {
		if rel.Type != types.RelationshipTypeChild {
			continue
		}
		for _, id := range rel.Ids {
			child, ok := byID[id]
			if !ok {
				continue
			}
			switch child.BlockType {
			case types.BlockTypeWord:
				if child.Text != nil {
					words = append(words, *child.Text)
				}
			case types.BlockTypeSelectionElement:
				if child.SelectionStatus == types.SelectionStatusSelected {
					words = append(words, "SELECTED")
				}
			}
		}
	}
	return strings.Join(words, " ")
}
