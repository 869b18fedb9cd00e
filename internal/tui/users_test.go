package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/grably/adminctl/pkg/domain"
)

func loadedUsers() usersModel {
	m := newUsersModel(testClient())
	m, _ = m.Update(usersLoadedMsg{users: []domain.User{
		{ID: 1, Name: "Ana Cruz", Email: "ana@example.com", Role: "user", Status: domain.UserStatusActive, CreatedAt: time.Now()},
		{ID: 2, Name: "Ben Okafor", Email: "ben@example.com", Role: "user", Status: domain.UserStatusInactive, CreatedAt: time.Now()},
	}})
	return m
}

func TestUsersCursorMovement(t *testing.T) {
	m := loadedUsers()
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m, _ = m.Update(keyMsg("j")) // clamped at the last row
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1 (clamped)", m.cursor)
	}
	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
}

func TestUsersSearchFlow(t *testing.T) {
	m := loadedUsers()
	m, _ = m.Update(keyMsg("/"))
	if !m.editing() {
		t.Fatal("search mode should count as editing")
	}
	for _, r := range "ana" {
		m, _ = m.Update(keyMsg(string(r)))
	}
	if m.search != "ana" {
		t.Fatalf("search = %q, want ana", m.search)
	}
	m, cmd := m.Update(keyMsg("enter"))
	if m.mode != usersList {
		t.Error("enter should leave search mode")
	}
	if cmd == nil {
		t.Error("enter should trigger a reload")
	}
}

func TestUsersCreateFormValidation(t *testing.T) {
	m := loadedUsers()
	m, _ = m.Update(keyMsg("n"))
	if m.editID != 0 {
		t.Fatal("new form must not carry an edit id")
	}

	// Submitting the empty form stays local; no request goes out.
	m, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd != nil {
		t.Fatal("invalid form must not produce a command")
	}
	if m.formErr == "" {
		t.Fatal("expected a validation message")
	}

	for i, v := range []string{"Cara Ruiz", "cara@example.com", "555-0100", "hunter2!"} {
		m.focus = i
		for _, r := range v {
			m, _ = m.Update(keyMsg(string(r)))
		}
	}
	m, cmd = m.Update(keyMsg("ctrl+s"))
	if cmd == nil {
		t.Fatal("valid form should submit")
	}
	if !m.submitting {
		t.Error("model should report the in-flight save")
	}
}

func TestUsersEditPrefillsFields(t *testing.T) {
	m := loadedUsers()
	m, _ = m.Update(keyMsg("e"))
	if m.editID != 1 {
		t.Fatalf("editID = %d, want 1", m.editID)
	}
	if m.fields[0] != "Ana Cruz" || m.fields[1] != "ana@example.com" {
		t.Errorf("fields = %v, want prefilled name and email", m.fields[:2])
	}
	if m.fieldCount() != userFieldCount-1 {
		t.Error("password field must be hidden when editing")
	}
}

func TestUsersDeleteNeedsConfirmation(t *testing.T) {
	m := loadedUsers()
	m, cmd := m.Update(keyMsg("d"))
	if cmd != nil {
		t.Fatal("'d' alone must not delete")
	}
	if m.mode != usersConfirm {
		t.Fatal("'d' should ask for confirmation")
	}
	m, _ = m.Update(keyMsg("n"))
	if m.mode != usersList {
		t.Error("'n' should cancel the delete")
	}

	m, _ = m.Update(keyMsg("d"))
	_, cmd = m.Update(keyMsg("y"))
	if cmd == nil {
		t.Error("'y' should issue the delete")
	}
}

func TestUsersToggleIssuesCommand(t *testing.T) {
	m := loadedUsers()
	_, cmd := m.Update(keyMsg("t"))
	if cmd == nil {
		t.Fatal("'t' should issue the toggle call")
	}
}

func TestUsersSaveErrorStaysInForm(t *testing.T) {
	m := loadedUsers()
	m, _ = m.Update(keyMsg("n"))
	m, _ = m.Update(userSavedMsg{err: errDuplicateEmail{}})
	if m.mode != usersForm {
		t.Fatal("a failed save must keep the form open")
	}
	if m.formErr == "" {
		t.Error("expected the backend message in the form")
	}
}

type errDuplicateEmail struct{}

func (errDuplicateEmail) Error() string { return "email already registered" }

func TestUsersViewListsRows(t *testing.T) {
	m := loadedUsers()
	out := m.View()
	for _, want := range []string{"Ana Cruz", "ben@example.com", "active"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
