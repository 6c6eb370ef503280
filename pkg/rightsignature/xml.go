package rightsignature

// xml.go builds the XML request bodies for write operations

import (
	"encoding/xml"
)

// DocumentData embeds a file in a request body.
type DocumentData struct {
	Type     string `xml:"type"`
	Filename string `xml:"filename"`
	Value    string `xml:"value"`
}

// documentBody is the <document> body of a send request.
type documentBody struct {
	XMLName          xml.Name      `xml:"document"`
	DocumentData     *DocumentData `xml:"document_data,omitempty"`
	Action           string        `xml:"action,omitempty"`
	UseTextTags      bool          `xml:"use_text_tags,omitempty"`
	LockSigners      bool          `xml:"lock_signers,omitempty"`
	PasscodeQuestion string        `xml:"passcode_question,omitempty"`
	PasscodeAnswer   string        `xml:"passcode_answer,omitempty"`
	Subject          string        `xml:"subject,omitempty"`
	Description      string        `xml:"description,omitempty"`
	ExpiresIn        int           `xml:"expires_in,omitempty"`
	CallbackLocation string        `xml:"callback_location,omitempty"`
	Recipients       []Recipient   `xml:"recipients>recipient,omitempty"`
	Tags             []Tag         `xml:"tags>tag,omitempty"`
}

// templateBody is the <template> body of prefill and swap requests.
type templateBody struct {
	XMLName          xml.Name      `xml:"template"`
	DocumentData     *DocumentData `xml:"document_data,omitempty"`
	GUID             string        `xml:"guid,omitempty"`
	Action           string        `xml:"action,omitempty"`
	Subject          string        `xml:"subject,omitempty"`
	Description      string        `xml:"description,omitempty"`
	ExpiresIn        int           `xml:"expires_in,omitempty"`
	CallbackLocation string        `xml:"callback_location,omitempty"`
	Roles            []Role        `xml:"roles>role,omitempty"`
	Tags             []Tag         `xml:"tags>tag,omitempty"`
	MergeFields      []MergeField  `xml:"merge_fields>merge_field,omitempty"`
}

// tagsBody is the <tags> body of an update_tags request. Unlike the nested lists it is
// always emitted, even when empty, since it is the whole request.
type tagsBody struct {
	XMLName xml.Name `xml:"tags"`
	Tags    []Tag    `xml:"tag"`
}

type callbackBody struct {
	XMLName xml.Name `xml:"callback_location"`
	URL     string   `xml:",chardata"`
}

// EncodeSendBody builds the <document> body for sending a document.
func EncodeSendBody(data *DocumentData, opts SendOptions) ([]byte, error) {
	return marshalXML(documentBody{
		DocumentData:     data,
		Action:           "send",
		UseTextTags:      opts.UseTextTags,
		LockSigners:      opts.LockSigners,
		PasscodeQuestion: opts.PasscodeQuestion,
		PasscodeAnswer:   opts.PasscodeAnswer,
		Subject:          opts.Subject,
		Description:      opts.Description,
		ExpiresIn:        opts.ExpiresIn,
		CallbackLocation: opts.CallbackLocation,
		Recipients:       opts.Recipients,
		Tags:             opts.Tags,
	})
}

// EncodeTemplateBody builds the <template> body for prefill, prefill-and-send and swap requests.
// data is only set when swapping the underlying file.
func EncodeTemplateBody(data *DocumentData, guid, action string, opts PrefillOptions) ([]byte, error) {
	return marshalXML(templateBody{
		DocumentData:     data,
		GUID:             guid,
		Action:           action,
		Subject:          opts.Subject,
		Description:      opts.Description,
		ExpiresIn:        opts.ExpiresIn,
		CallbackLocation: opts.CallbackLocation,
		Roles:            opts.Roles,
		Tags:             opts.Tags,
		MergeFields:      opts.MergeFields,
	})
}

// EncodeTagsBody builds the <tags> body for updating document tags.
func EncodeTagsBody(tags []Tag) ([]byte, error) {
	return marshalXML(tagsBody{Tags: tags})
}

// EncodeCallbackBody builds the <callback_location> body for updating a document callback.
func EncodeCallbackBody(url string) ([]byte, error) {
	return marshalXML(callbackBody{URL: url})
}

func marshalXML(v any) ([]byte, error) {
	out, err := xml.Marshal(v)
	if err != nil {
		return nil, WrapEncodeError(err, "failed to encode request body")
	}
	return append([]byte(xml.Header), out...), nil
}
