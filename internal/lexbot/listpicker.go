// internal/lexbot/listpicker.go
package lexbot

import "encoding/json"

// ListPickerElement is one selectable option.
type ListPickerElement struct {
	Title string `json:"title"`
}

type listPickerReply struct {
	Title string `json:"title"`
}

type listPickerContent struct {
	Title    string              `json:"title"`
	Subtitle string              `json:"subtitle"`
	Elements []ListPickerElement `json:"elements"`
}

type listPickerData struct {
	ReplyMessage listPickerReply   `json:"replyMessage"`
	Content      listPickerContent `json:"content"`
}

type listPickerTemplate struct {
	TemplateType string         `json:"templateType"`
	Version      string         `json:"version"`
	Data         listPickerData `json:"data"`
}

// ListPicker builds a CustomPayload message carrying the interactive
// selectable-list template the chat widget renders.
func ListPicker(title string, elements []ListPickerElement) (Message, error) {
	tpl := listPickerTemplate{
		TemplateType: "ListPicker",
		Version:      "1.0",
		Data: listPickerData{
			ReplyMessage: listPickerReply{Title: "Thanks for selecting!"},
			Content: listPickerContent{
				Title:    title,
				Subtitle: "Tap to select option",
				Elements: elements,
			},
		},
	}
	content, err := json.Marshal(tpl)
	if err != nil {
		return Message{}, err
	}
	return Message{ContentType: ContentCustomPayload, Content: string(content)}, nil
}
