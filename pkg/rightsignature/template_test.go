package rightsignature_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/information-sharing-networks/rightsignature-go/internal/rstest"
	"github.com/information-sharing-networks/rightsignature-go/pkg/rightsignature"
)

func newTestClient(t *testing.T) (*rightsignature.Client, *rstest.Server, afero.Fs) {
	t.Helper()
	srv := rstest.NewServer(t)
	fs := afero.NewMemMapFs()
	client := rightsignature.New("test-token",
		rightsignature.WithBaseURL(srv.BaseURL()),
		rightsignature.WithHTTPClient(srv.Client()),
		rightsignature.WithFs(fs),
	)
	return client, srv, fs
}

func TestTemplateLoad(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodGet, "/api/templates/TPL1.json", `{"template":{"guid":"TPL1","subject":"Offer"}}`)

	tpl, err := client.Template(context.Background(), "TPL1")
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	subject, err := tpl.Get("subject")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if subject.String() != "Offer" {
		t.Errorf("subject = %q, want Offer", subject.String())
	}

	req := srv.LastRequest(t)
	if req.Header.Get("api-token") != "test-token" {
		t.Errorf("api-token header = %q", req.Header.Get("api-token"))
	}
}

func TestTemplateLoadKeepsPreviousWhenEmpty(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodGet, "/api/templates/TPL1.json", `{"template":{"guid":"TPL1"}}`)
	srv.Handle(http.MethodGet, "/api/templates/TPL2.json", `{"template":null}`)

	tpl, err := client.Template(context.Background(), "TPL1")
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}
	if _, err := tpl.Load(context.Background(), "TPL2"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	guid, _ := tpl.Get("guid")
	if guid.String() != "TPL1" {
		t.Errorf("loaded guid = %q, want TPL1", guid.String())
	}
}

func TestTemplateGetWithoutLoad(t *testing.T) {
	client, _, _ := newTestClient(t)

	tpl, _ := client.Template(context.Background(), "")
	_, err := tpl.Get("")
	if !rightsignature.HasCode(err, rightsignature.ErrCodeNoLoadedResource) {
		t.Errorf("Get() error = %v, want no_loaded_resource", err)
	}
	if _, ok := tpl.Loaded(); ok {
		t.Error("Loaded() reported a resource")
	}
}

func TestTemplateList(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodGet, "/api/templates.json",
		`{"page":{"total_templates":1,"total_pages":1,"current_page":2,"per_page":5,"templates":{"template":{"guid":"only"}}}}`)

	tpl, _ := client.Template(context.Background(), "")
	page, err := tpl.List(context.Background(), rightsignature.TemplateListOptions{Page: 2, PerPage: 5, Search: "foo bar"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(page.Items) != 1 || page.Items[0].Get("guid").String() != "only" {
		t.Errorf("Items = %v, want one item with guid only", page.Items)
	}
	if page.CurrentPage != 2 || page.PerPage != 5 {
		t.Errorf("page counters = %+v", page)
	}

	req := srv.LastRequest(t)
	if want := "page=2&per_page=5&search=foo%20bar"; req.RawQuery != want {
		t.Errorf("query = %q, want %q", req.RawQuery, want)
	}
}

func TestTemplateCount(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodGet, "/api/templates.json", `{"page":{"total_templates":23,"total_pages":3,"templates":[]}}`)

	tpl, _ := client.Template(context.Background(), "")
	count, err := tpl.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count.Total != 23 || count.TotalPages != 3 {
		t.Errorf("Count() = %+v", count)
	}
	if q := srv.LastRequest(t).RawQuery; q != "" {
		t.Errorf("Count() sent query %q, want none", q)
	}
}

func TestTemplatePrepackage(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodPost, "/api/templates/A,B/prepackage.json", `{"template":{"guid":"PKG"}}`)

	tpl, _ := client.Template(context.Background(), "")
	if _, err := tpl.Prepackage(context.Background(), "https://example.com/cb", "A", "B"); err != nil {
		t.Fatalf("Prepackage() error = %v", err)
	}

	guid, err := tpl.Get("guid")
	if err != nil || guid.String() != "PKG" {
		t.Errorf("loaded guid = %q (%v), want PKG", guid.String(), err)
	}
	req := srv.LastRequest(t)
	if want := "callback_location=https%3A%2F%2Fexample.com%2Fcb"; req.RawQuery != want {
		t.Errorf("query = %q, want %q", req.RawQuery, want)
	}
}

func TestTemplatePrefillUsesLoadedGUID(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodGet, "/api/templates/Y.json", `{"template":{"guid":"Y"}}`)
	srv.Handle(http.MethodPost, "/api/templates.json", `{"template":{"guid":"FILLED"}}`)

	tpl, _ := client.Template(context.Background(), "")
	tpl.SetGUID("X")
	if _, err := tpl.Load(context.Background(), "Y"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	opts := rightsignature.PrefillOptions{
		Subject: "Offer",
		Roles:   []rightsignature.Role{{RoleName: "Employee", Email: "bob@example.com"}},
	}
	if _, err := tpl.Prefill(context.Background(), opts, ""); err != nil {
		t.Fatalf("Prefill() error = %v", err)
	}

	body := srv.LastRequest(t).Body
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<guid>Y</guid>`,
		`<action>fill</action>`,
		`<role role_name="Employee"><email>bob@example.com</email></role>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s does not contain %s", body, want)
		}
	}

	guid, _ := tpl.Get("guid")
	if guid.String() != "FILLED" {
		t.Errorf("loaded guid = %q, want FILLED", guid.String())
	}
}

func TestTemplatePrefillAndSend(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodPost, "/api/templates.json", `{"document":{"guid":"DOC9","status":"sent"}}`)

	tpl, _ := client.Template(context.Background(), "")
	doc, err := tpl.SetGUID("TPL1").PrefillAndSend(context.Background(), rightsignature.PrefillOptions{Action: "redirect"}, "")
	if err != nil {
		t.Fatalf("PrefillAndSend() error = %v", err)
	}
	if doc.GUID() != "DOC9" {
		t.Errorf("document guid = %q, want DOC9", doc.GUID())
	}
	if _, ok := doc.Loaded(); ok {
		t.Error("returned document should not be loaded")
	}
	if body := srv.LastRequest(t).Body; !strings.Contains(body, "<action>redirect</action>") {
		t.Errorf("explicit action not used: %s", body)
	}
}

func TestTemplateSwapTemplate(t *testing.T) {
	client, srv, fs := newTestClient(t)
	srv.Handle(http.MethodPost, "/api/templates.json", `{"document":{"guid":"DOC1"}}`)
	if err := afero.WriteFile(fs, "/docs/new_contract.pdf", []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	tpl, _ := client.Template(context.Background(), "")
	doc, err := tpl.SwapTemplate(context.Background(), "/docs/new_contract.pdf", rightsignature.PrefillOptions{}, "TPL1")
	if err != nil {
		t.Fatalf("SwapTemplate() error = %v", err)
	}
	if doc.GUID() != "DOC1" {
		t.Errorf("document guid = %q, want DOC1", doc.GUID())
	}

	body := srv.LastRequest(t).Body
	encoded := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))
	for _, want := range []string{
		`<template><document_data><type>base64</type><filename>new_contract.pdf</filename><value>` + encoded + `</value></document_data>`,
		`<guid>TPL1</guid><action>prefill</action>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s does not contain %s", body, want)
		}
	}
}

func TestTemplateMissingGUID(t *testing.T) {
	client, srv, _ := newTestClient(t)

	tpl, _ := client.Template(context.Background(), "")
	_, err := tpl.Prefill(context.Background(), rightsignature.PrefillOptions{}, "")
	if !rightsignature.HasCode(err, rightsignature.ErrCodeMissingIdentifier) {
		t.Errorf("Prefill() error = %v, want missing_identifier", err)
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("%d requests sent, want none", n)
	}
}

func TestTemplatePrepackageGUIDs(t *testing.T) {
	client, srv, _ := newTestClient(t)
	srv.Handle(http.MethodGet, "/api/templates/T1.json", `{"template":{"guid":"T1"}}`)
	srv.Handle(http.MethodPost, "/api/templates/T1/prepackage.json", `{"template":{"guid":"PKG"}}`)

	tpl, err := client.Template(context.Background(), "T1")
	if err != nil {
		t.Fatalf("Template() error = %v", err)
	}

	if _, err := tpl.Prepackage(context.Background(), "", ""); err != nil {
		t.Fatalf("Prepackage(\"\") error = %v", err)
	}
	if got := srv.LastRequest(t).Path; got != "/api/templates/T1/prepackage.json" {
		t.Errorf("path = %q, want the loaded guid", got)
	}

	before := len(srv.Requests())
	_, err = tpl.Prepackage(context.Background(), "", "A", "")
	if !rightsignature.HasCode(err, rightsignature.ErrCodeMissingIdentifier) {
		t.Errorf("Prepackage(A, \"\") error = %v, want missing_identifier", err)
	}
	if n := len(srv.Requests()); n != before {
		t.Errorf("%d requests sent for an empty guid, want none", n-before)
	}
}

func TestTemplatePrepackageMissingGUID(t *testing.T) {
	client, srv, _ := newTestClient(t)

	tpl, _ := client.Template(context.Background(), "")
	_, err := tpl.Prepackage(context.Background(), "", "")
	if !rightsignature.HasCode(err, rightsignature.ErrCodeMissingIdentifier) {
		t.Errorf("Prepackage() error = %v, want missing_identifier", err)
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("%d requests sent, want none", n)
	}
}
