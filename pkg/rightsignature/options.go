package rightsignature

// options.go holds the request options accepted by write operations.
//
// JSON tags use the API's option keys, so an options mapping such as
// {"subject": "...", "tags": [{"name": "a"}]} decodes directly; unrecognized keys are ignored.
// XML tags carry the omit-if-empty rule: zero values never produce an element.

// Tag is a document or template tag. Value is optional.
type Tag struct {
	Name  string `json:"name,omitempty" xml:"name,omitempty"`
	Value string `json:"value,omitempty" xml:"value,omitempty"`
}

// Recipient is a party a document is sent to.
type Recipient struct {
	Name     string `json:"name,omitempty" xml:"name,omitempty"`
	Email    string `json:"email,omitempty" xml:"email,omitempty"`
	Role     string `json:"role,omitempty" xml:"role,omitempty"`
	Locked   bool   `json:"locked,omitempty" xml:"locked,omitempty"`
	IsSender bool   `json:"is_sender,omitempty" xml:"is_sender,omitempty"`
}

// Role assigns a person to a template role, addressed either by RoleName or by RoleID.
type Role struct {
	RoleName string `json:"role_name,omitempty" xml:"role_name,attr,omitempty"`
	RoleID   string `json:"role_id,omitempty" xml:"role_id,attr,omitempty"`
	Name     string `json:"name,omitempty" xml:"name,omitempty"`
	Email    string `json:"email,omitempty" xml:"email,omitempty"`
}

// MergeField sets a template merge field, addressed either by MergeFieldID or by MergeFieldName.
type MergeField struct {
	MergeFieldID   string `json:"merge_field_id,omitempty" xml:"merge_field_id,attr,omitempty"`
	MergeFieldName string `json:"merge_field_name,omitempty" xml:"merge_field_name,attr,omitempty"`
	Value          string `json:"value,omitempty" xml:"value,omitempty"`
	Locked         bool   `json:"locked,omitempty" xml:"locked,omitempty"`
}

// SendOptions are the options for Document.Send.
type SendOptions struct {
	Recipients       []Recipient `json:"recipients,omitempty"`
	Subject          string      `json:"subject,omitempty"`
	ExpiresIn        int         `json:"expires_in,omitempty"`
	Description      string      `json:"description,omitempty"`
	Tags             []Tag       `json:"tags,omitempty"`
	CallbackLocation string      `json:"callback_location,omitempty"`
	UseTextTags      bool        `json:"use_text_tags,omitempty"`
	LockSigners      bool        `json:"lock_signers,omitempty"`
	PasscodeQuestion string      `json:"passcode_question,omitempty"`
	PasscodeAnswer   string      `json:"passcode_answer,omitempty"`
}

// PrefillOptions are the options for Template.Prefill, Template.PrefillAndSend and
// Template.SwapTemplate. An empty Action selects the operation's default.
type PrefillOptions struct {
	Subject          string       `json:"subject,omitempty"`
	Description      string       `json:"description,omitempty"`
	ExpiresIn        int          `json:"expires_in,omitempty"`
	CallbackLocation string       `json:"callback_location,omitempty"`
	Roles            []Role       `json:"roles,omitempty"`
	Tags             []Tag        `json:"tags,omitempty"`
	MergeFields      []MergeField `json:"merge_fields,omitempty"`
	Action           string       `json:"action,omitempty"`
}

func (o PrefillOptions) actionOr(def string) string {
	if o.Action != "" {
		return o.Action
	}
	return def
}
