package portfolio

import (
	"bytes"
	"encoding/json"
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const maxPathLength = 2048

// Decoders turn an arbitrary JSON body into a typed input. They report every
// missing or mistyped field at once as a *ValidationError; unknown fields are
// ignored.

func DecodeProfileInput(body []byte) (ProfileInput, error) {
	f, err := parseObject(body)
	if err != nil {
		return ProfileInput{}, err
	}
	in := ProfileInput{
		Name:             f.requiredString("name"),
		Role:             f.requiredString("role"),
		MonthlyListeners: f.requiredString("monthlyListeners"),
		Bio:              f.requiredString("bio"),
		Education:        f.requiredString("education"),
		GithubURL:        f.requiredString("githubUrl"),
		LinkedinURL:      f.requiredString("linkedinUrl"),
		AvatarURL:        f.requiredString("avatarUrl"),
	}
	if err := f.finish(in.Validate()); err != nil {
		return ProfileInput{}, err
	}
	return in, nil
}

func DecodeSkillInput(body []byte) (SkillInput, error) {
	f, err := parseObject(body)
	if err != nil {
		return SkillInput{}, err
	}
	in := SkillInput{
		Name:        f.requiredString("name"),
		Proficiency: f.requiredString("proficiency"),
		Experience:  f.requiredString("experience"),
		Order:       f.optionalInt("order"),
	}
	if err := f.finish(in.Validate()); err != nil {
		return SkillInput{}, err
	}
	return in, nil
}

func DecodeSkillPatch(body []byte) (SkillPatch, error) {
	f, err := parseObject(body)
	if err != nil {
		return SkillPatch{}, err
	}
	p := SkillPatch{
		Name:        f.patchString("name"),
		Proficiency: f.patchString("proficiency"),
		Experience:  f.patchString("experience"),
		Order:       f.patchInt("order"),
	}
	if err := f.finish(p.Validate()); err != nil {
		return SkillPatch{}, err
	}
	return p, nil
}

func DecodeProjectInput(body []byte) (ProjectInput, error) {
	f, err := parseObject(body)
	if err != nil {
		return ProjectInput{}, err
	}
	in := ProjectInput{
		Title:    f.requiredString("title"),
		Subtitle: f.requiredString("subtitle"),
		Gradient: f.requiredString("gradient"),
		ImageURL: f.optionalString("imageUrl"),
		Link:     f.optionalString("link"),
		Order:    f.optionalInt("order"),
	}
	if err := f.finish(in.Validate()); err != nil {
		return ProjectInput{}, err
	}
	return in, nil
}

func DecodeProjectPatch(body []byte) (ProjectPatch, error) {
	f, err := parseObject(body)
	if err != nil {
		return ProjectPatch{}, err
	}
	p := ProjectPatch{
		Title:    f.patchString("title"),
		Subtitle: f.patchString("subtitle"),
		Gradient: f.patchString("gradient"),
		ImageURL: f.nullableString("imageUrl"),
		Link:     f.nullableString("link"),
		Order:    f.patchInt("order"),
	}
	if err := f.finish(p.Validate()); err != nil {
		return ProjectPatch{}, err
	}
	return p, nil
}

func DecodeBlogPostInput(body []byte) (BlogPostInput, error) {
	f, err := parseObject(body)
	if err != nil {
		return BlogPostInput{}, err
	}
	in := BlogPostInput{
		Title:         f.requiredString("title"),
		Subtitle:      f.requiredString("subtitle"),
		Content:       f.requiredString("content"),
		CoverGradient: f.requiredString("coverGradient"),
	}
	if v := f.optionalBool("published"); v != nil {
		in.Published = *v
	}
	if err := f.finish(in.Validate()); err != nil {
		return BlogPostInput{}, err
	}
	return in, nil
}

func DecodeBlogPostPatch(body []byte) (BlogPostPatch, error) {
	f, err := parseObject(body)
	if err != nil {
		return BlogPostPatch{}, err
	}
	p := BlogPostPatch{
		Title:         f.patchString("title"),
		Subtitle:      f.patchString("subtitle"),
		Content:       f.patchString("content"),
		CoverGradient: f.patchString("coverGradient"),
		Published:     f.patchBool("published"),
	}
	if err := f.finish(p.Validate()); err != nil {
		return BlogPostPatch{}, err
	}
	return p, nil
}

func DecodeContactInput(body []byte) (ContactInput, error) {
	f, err := parseObject(body)
	if err != nil {
		return ContactInput{}, err
	}
	in := ContactInput{
		Name:    f.requiredString("name"),
		Email:   strings.TrimSpace(f.requiredString("email")),
		Message: f.requiredString("message"),
	}
	if err := f.finish(in.Validate()); err != nil {
		return ContactInput{}, err
	}
	return in, nil
}

func DecodePageViewInput(body []byte) (PageViewInput, error) {
	f, err := parseObject(body)
	if err != nil {
		return PageViewInput{}, err
	}
	in := PageViewInput{Path: strings.TrimSpace(f.requiredString("path"))}
	if err := f.finish(in.Validate()); err != nil {
		return PageViewInput{}, err
	}
	return in, nil
}

// Validate methods check value constraints on already-typed inputs. The seed
// utility calls them directly.

func (in ProfileInput) Validate() error {
	var v ValidationError
	notBlank(&v, "name", in.Name)
	notBlank(&v, "role", in.Role)
	notBlank(&v, "monthlyListeners", in.MonthlyListeners)
	notBlank(&v, "bio", in.Bio)
	notBlank(&v, "education", in.Education)
	notBlank(&v, "githubUrl", in.GithubURL)
	notBlank(&v, "linkedinUrl", in.LinkedinURL)
	notBlank(&v, "avatarUrl", in.AvatarURL)
	return v.orNil()
}

func (in SkillInput) Validate() error {
	var v ValidationError
	notBlank(&v, "name", in.Name)
	notBlank(&v, "proficiency", in.Proficiency)
	notBlank(&v, "experience", in.Experience)
	return v.orNil()
}

func (p SkillPatch) Validate() error {
	var v ValidationError
	notBlankPtr(&v, "name", p.Name)
	notBlankPtr(&v, "proficiency", p.Proficiency)
	notBlankPtr(&v, "experience", p.Experience)
	return v.orNil()
}

func (in ProjectInput) Validate() error {
	var v ValidationError
	notBlank(&v, "title", in.Title)
	notBlank(&v, "subtitle", in.Subtitle)
	notBlank(&v, "gradient", in.Gradient)
	return v.orNil()
}

func (p ProjectPatch) Validate() error {
	var v ValidationError
	notBlankPtr(&v, "title", p.Title)
	notBlankPtr(&v, "subtitle", p.Subtitle)
	notBlankPtr(&v, "gradient", p.Gradient)
	return v.orNil()
}

func (in BlogPostInput) Validate() error {
	var v ValidationError
	notBlank(&v, "title", in.Title)
	notBlank(&v, "subtitle", in.Subtitle)
	notBlank(&v, "content", in.Content)
	notBlank(&v, "coverGradient", in.CoverGradient)
	return v.orNil()
}

func (p BlogPostPatch) Validate() error {
	var v ValidationError
	notBlankPtr(&v, "title", p.Title)
	notBlankPtr(&v, "subtitle", p.Subtitle)
	notBlankPtr(&v, "content", p.Content)
	notBlankPtr(&v, "coverGradient", p.CoverGradient)
	return v.orNil()
}

func (in ContactInput) Validate() error {
	var v ValidationError
	notBlank(&v, "name", in.Name)
	if notBlank(&v, "email", in.Email) {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			v.add("email", "must be a valid email address")
		}
	}
	notBlank(&v, "message", in.Message)
	return v.orNil()
}

func (in PageViewInput) Validate() error {
	var v ValidationError
	if notBlank(&v, "path", in.Path) && utf8.RuneCountInString(in.Path) > maxPathLength {
		v.add("path", "must be at most 2048 characters")
	}
	return v.orNil()
}

func notBlank(v *ValidationError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.add(field, "must not be empty")
		return false
	}
	return true
}

func notBlankPtr(v *ValidationError, field string, value *string) {
	if value != nil {
		notBlank(v, field, *value)
	}
}

type object struct {
	raw  map[string]json.RawMessage
	verr ValidationError
}

var jsonNull = []byte("null")

func parseObject(body []byte) (*object, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ValidationError{Fields: []FieldError{{Message: "expected a JSON object"}}}
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Message: "malformed JSON body"}}}
	}
	return &object{raw: raw}, nil
}

// lookup returns the raw value and whether the key was present with a non-null value.
func (o *object) lookup(name string) (json.RawMessage, bool, bool) {
	raw, ok := o.raw[name]
	if !ok {
		return nil, false, false
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, true, true
	}
	return raw, true, false
}

func (o *object) requiredString(name string) string {
	raw, present, null := o.lookup(name)
	if !present || null {
		o.verr.add(name, "is required")
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		o.verr.add(name, "must be a string")
		return ""
	}
	return s
}

func (o *object) optionalString(name string) *string {
	raw, present, null := o.lookup(name)
	if !present || null {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		o.verr.add(name, "must be a string")
		return nil
	}
	return &s
}

func (o *object) patchString(name string) *string {
	raw, present, null := o.lookup(name)
	if !present {
		return nil
	}
	if null {
		o.verr.add(name, "must be a string")
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		o.verr.add(name, "must be a string")
		return nil
	}
	return &s
}

func (o *object) nullableString(name string) Nullable[string] {
	raw, present, null := o.lookup(name)
	if !present {
		return Nullable[string]{}
	}
	if null {
		return Nullable[string]{Set: true}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		o.verr.add(name, "must be a string or null")
		return Nullable[string]{}
	}
	return Nullable[string]{Set: true, Value: &s}
}

func (o *object) optionalInt(name string) *int {
	raw, present, null := o.lookup(name)
	if !present || null {
		return nil
	}
	return o.decodeInt(name, raw)
}

func (o *object) patchInt(name string) *int {
	raw, present, null := o.lookup(name)
	if !present {
		return nil
	}
	if null {
		o.verr.add(name, "must be an integer")
		return nil
	}
	return o.decodeInt(name, raw)
}

// decodeInt accepts only values that fit the INTEGER columns they land in.
func (o *object) decodeInt(name string, raw json.RawMessage) *int {
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		var f float64
		if json.Unmarshal(raw, &f) == nil && f == math.Trunc(f) {
			o.verr.add(name, "must be a 32-bit integer")
			return nil
		}
		o.verr.add(name, "must be an integer")
		return nil
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		o.verr.add(name, "must be a 32-bit integer")
		return nil
	}
	v := int(n)
	return &v
}

func (o *object) optionalBool(name string) *bool {
	raw, present, null := o.lookup(name)
	if !present || null {
		return nil
	}
	return o.decodeBool(name, raw)
}

func (o *object) patchBool(name string) *bool {
	raw, present, null := o.lookup(name)
	if !present {
		return nil
	}
	if null {
		o.verr.add(name, "must be a boolean")
		return nil
	}
	return o.decodeBool(name, raw)
}

func (o *object) decodeBool(name string, raw json.RawMessage) *bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		o.verr.add(name, "must be a boolean")
		return nil
	}
	return &b
}

// finish merges value-level violations into the decode violations, keeping the
// first message per field.
func (o *object) finish(validateErr error) error {
	seen := make(map[string]struct{}, len(o.verr.Fields))
	for _, f := range o.verr.Fields {
		seen[f.Field] = struct{}{}
	}
	if ve, ok := validateErr.(*ValidationError); ok && ve != nil {
		for _, f := range ve.Fields {
			if _, dup := seen[f.Field]; dup {
				continue
			}
			o.verr.Fields = append(o.verr.Fields, f)
		}
	}
	return o.verr.orNil()
}

func (f PageViewFilter) Validate() error {
	var v ValidationError
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		v.add("to", "must not be before from")
	}
	return v.orNil()
}
