package dashboard

import (
	"errors"
	"strings"
	"testing"
	"time"

	"sms-dashboard/pkg/models"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	return verr.Fields
}

func TestValidateLoginForm(t *testing.T) {
	if err := Validate(LoginForm{Email: "a@b.com", Password: "x"}); err != nil {
		t.Fatalf("valid form: %v", err)
	}

	fields := fieldErrors(t, Validate(LoginForm{Email: "   ", Password: ""}))
	if fields["email"] != "email is required" || fields["password"] != "password is required" {
		t.Errorf("fields = %v", fields)
	}

	fields = fieldErrors(t, Validate(LoginForm{Email: "not-an-email", Password: "x"}))
	if _, ok := fields["email"]; !ok || len(fields) != 1 {
		t.Errorf("fields = %v", fields)
	}
}

func TestValidateRegisterPasswordLength(t *testing.T) {
	fields := fieldErrors(t, Validate(RegisterForm{Email: "a@b.com", Password: "12345"}))
	if fields["password"] != "password must be at least 6 characters" {
		t.Errorf("fields = %v", fields)
	}
	if err := Validate(RegisterForm{Email: "a@b.com", Password: "123456"}); err != nil {
		t.Errorf("six characters should pass: %v", err)
	}
}

func TestValidateMessageForm(t *testing.T) {
	if err := Validate(MessageForm{ContactID: "1", Content: strings.Repeat("a", 160)}); err != nil {
		t.Fatalf("160 characters should pass: %v", err)
	}
	if err := Validate(MessageForm{ContactID: "1", Content: strings.Repeat("ñ", 160)}); err != nil {
		t.Fatalf("limit counts characters, not bytes: %v", err)
	}

	fields := fieldErrors(t, Validate(MessageForm{ContactID: "1", Content: strings.Repeat("a", 161)}))
	if fields["content"] != "content cannot exceed 160 characters" {
		t.Errorf("fields = %v", fields)
	}

	fields = fieldErrors(t, Validate(MessageForm{Content: " "}))
	if len(fields) != 2 {
		t.Errorf("want contact and content errors, got %v", fields)
	}
}

func TestValidateUploadForm(t *testing.T) {
	for _, name := range []string{"contacts.csv", "EXPORT.CSV"} {
		if err := Validate(UploadForm{Filename: name}); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	for _, name := range []string{"", "contacts.xlsx", "csv"} {
		if err := Validate(UploadForm{Filename: name}); err == nil {
			t.Errorf("%q should be rejected", name)
		}
	}
}

func TestValidationErrorMessageIsStable(t *testing.T) {
	err := Validate(RegisterForm{})
	if got := err.Error(); got != "email is required; password is required" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFilterContacts(t *testing.T) {
	contacts := []models.Contact{
		{ID: "1", Name: "María García", Phone: "+57 300 258 9448"},
		{ID: "2", Name: "Carlos López", Phone: "+57 310 261 2270"},
		{ID: "3", Name: "", Phone: ""},
	}

	if got := FilterContacts(contacts, ""); len(got) != 3 {
		t.Errorf("empty query kept %d", len(got))
	}
	if got := FilterContacts(contacts, "maría"); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("name search = %+v", got)
	}
	if got := FilterContacts(contacts, "310"); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("phone search = %+v", got)
	}
	if got := FilterContacts(contacts, "zzz"); len(got) != 0 {
		t.Errorf("no match = %+v", got)
	}
}

func TestBuildPreview(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)

	p := BuildPreview("", "", now)
	if !p.Empty || p.Segments != 0 || p.ContactPhone != DefaultPreviewPhone || p.Remaining != 160 {
		t.Errorf("empty preview = %+v", p)
	}
	if p.Time != "10:30" || p.Date != "Wednesday, January 15, 2025" {
		t.Errorf("clock = %q %q", p.Time, p.Date)
	}

	p = BuildPreview("¡Hola! Tu cita es mañana.", "+57 300", now)
	if p.Empty || p.Encoding != EncodingGSM7 || p.Segments != 1 || p.ContactPhone != "+57 300" {
		t.Errorf("gsm preview = %+v", p)
	}

	p = BuildPreview(strings.Repeat("a", 161), "", now)
	if !p.OverLimit || p.Remaining != -1 || p.Segments != 2 {
		t.Errorf("long preview = %+v", p)
	}

	p = BuildPreview("Confirmado ✅", "", now)
	if p.Encoding != EncodingUCS2 || p.Segments != 1 {
		t.Errorf("unicode preview = %+v", p)
	}
}

func TestSMSSegments(t *testing.T) {
	tests := []struct {
		content  string
		encoding string
		segments int
	}{
		{strings.Repeat("a", 160), EncodingGSM7, 1},
		{strings.Repeat("a", 306), EncodingGSM7, 2},
		{strings.Repeat("a", 307), EncodingGSM7, 3},
		{strings.Repeat("€", 80), EncodingGSM7, 1},
		{strings.Repeat("€", 81), EncodingGSM7, 2},
		{strings.Repeat("ж", 70), EncodingUCS2, 1},
		{strings.Repeat("ж", 71), EncodingUCS2, 2},
	}
	for _, tt := range tests {
		enc, seg := smsSegments(tt.content)
		if enc != tt.encoding || seg != tt.segments {
			t.Errorf("smsSegments(%d runes) = %s/%d, want %s/%d",
				len([]rune(tt.content)), enc, seg, tt.encoding, tt.segments)
		}
	}
}

func TestHistoryQuery(t *testing.T) {
	q := HistoryQuery{}.Normalized()
	if q.Page != 1 || q.Limit != DefaultPageSize {
		t.Errorf("defaults = %+v", q)
	}
	if q := (HistoryQuery{Limit: 500}).Normalized(); q.Limit != MaxPageSize {
		t.Errorf("limit cap = %d", q.Limit)
	}

	q = HistoryQuery{Page: 3, Limit: 10, Status: "sent"}
	if got := q.WithStatus("sent"); got.Page != 3 {
		t.Errorf("same filter should keep page, got %d", got.Page)
	}
	if got := q.WithStatus("failed"); got.Page != 1 || got.MessageStatus() != models.StatusFailed {
		t.Errorf("filter change = %+v", got)
	}

	if err := Validate(HistoryQuery{Status: "delivered"}); err == nil {
		t.Error("status outside the enum should fail validation")
	}
	if err := Validate(HistoryQuery{Page: -1}); err == nil {
		t.Error("negative page should fail validation")
	}
	for _, s := range models.MessageStatuses {
		if err := Validate(HistoryQuery{Status: string(s)}); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
}

func TestNewPager(t *testing.T) {
	if p := NewPager(1, 1); p.HasPrev || p.HasNext {
		t.Errorf("single page = %+v", p)
	}
	if p := NewPager(2, 3); !p.HasPrev || !p.HasNext {
		t.Errorf("middle page = %+v", p)
	}
	if p := NewPager(0, 0); p.Page != 1 || p.Pages != 1 {
		t.Errorf("zero values = %+v", p)
	}
}
