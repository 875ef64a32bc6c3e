package gateway

import (
	"testing"

	"sms-dashboard/pkg/models"
)

func TestNormalizeContactAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want models.Contact
	}{
		{
			name: "canonical",
			raw:  map[string]any{"id": "1", "name": "María", "phone": "+57 300", "email": "m@x.co", "created_at": "2025-01-15"},
			want: models.Contact{ID: "1", Name: "María", Phone: "+57 300", Email: "m@x.co", CreatedAt: "2025-01-15"},
		},
		{
			name: "spanish fields",
			raw:  map[string]any{"uuid": "u-9", "nombre": "Carlos", "telefono": "310", "correo": "c@x.co", "fecha": "2025-01-14"},
			want: models.Contact{ID: "u-9", Name: "Carlos", Phone: "310", Email: "c@x.co", CreatedAt: "2025-01-14"},
		},
		{
			name: "long aliases",
			raw:  map[string]any{"ID": "7", "nombre_completo": "Ana R", "telefono_celular": "311", "mail": "a@x.co", "createdAt": "2025-01-13"},
			want: models.Contact{ID: "7", Name: "Ana R", Phone: "311", Email: "a@x.co", CreatedAt: "2025-01-13"},
		},
		{
			name: "english aliases",
			raw:  map[string]any{"id": "8", "full_name": "Pedro", "mobile": "312"},
			want: models.Contact{ID: "8", Name: "Pedro", Phone: "312"},
		},
		{
			name: "first key wins",
			raw:  map[string]any{"name": "Primary", "nombre": "Secondary", "phone": "1", "telefono": "2"},
			want: models.Contact{Name: "Primary", Phone: "1"},
		},
		{
			name: "null skips to next alias",
			raw:  map[string]any{"name": nil, "nombre": "Laura", "id": nil, "uuid": "x"},
			want: models.Contact{ID: "x", Name: "Laura"},
		},
		{
			name: "numeric id",
			raw:  map[string]any{"id": float64(42)},
			want: models.Contact{ID: "42"},
		},
		{
			name: "unrecognized record",
			raw:  map[string]any{"foo": "bar"},
			want: models.Contact{},
		},
		{
			name: "nil record",
			raw:  nil,
			want: models.Contact{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeContact(tt.raw); got != tt.want {
				t.Errorf("NormalizeContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeContactListShapes(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		list, err := decodeContactList([]byte(`[{"id":1,"nombre":"A","telefono":"1"},{"uuid":"b"}]`))
		if err != nil {
			t.Fatal(err)
		}
		arr, ok := list.(models.ContactArray)
		if !ok {
			t.Fatalf("got %T, want ContactArray", list)
		}
		if len(arr) != 2 || arr[0].ID != "1" || arr[0].Name != "A" || arr[1].ID != "b" {
			t.Errorf("unexpected contacts %+v", arr)
		}
	})

	t.Run("data envelope without pages", func(t *testing.T) {
		list, err := decodeContactList([]byte(`{"data":{"items":[{"id":"1"},{"id":"2"}],"total":5}}`))
		if err != nil {
			t.Fatal(err)
		}
		env, ok := list.(*models.ContactEnvelope)
		if !ok {
			t.Fatalf("got %T, want *ContactEnvelope", list)
		}
		if env.Total != 5 || env.Pages != 1 || len(env.Items) != 2 || env.Page != nil {
			t.Errorf("unexpected envelope %+v", env)
		}
	})

	t.Run("top level envelope", func(t *testing.T) {
		list, err := decodeContactList([]byte(`{"items":[{"id":"1"}],"page":2,"pages":3}`))
		if err != nil {
			t.Fatal(err)
		}
		env := list.(*models.ContactEnvelope)
		if env.Total != 1 || env.Pages != 3 || env.Page == nil || *env.Page != 2 {
			t.Errorf("unexpected envelope %+v", env)
		}
	})

	t.Run("items not an array", func(t *testing.T) {
		list, err := decodeContactList([]byte(`{"data":{"items":"nope"}}`))
		if err != nil {
			t.Fatal(err)
		}
		env := list.(*models.ContactEnvelope)
		if len(env.Items) != 0 || env.Total != 0 || env.Pages != 1 {
			t.Errorf("unexpected envelope %+v", env)
		}
	})

	t.Run("null body", func(t *testing.T) {
		list, err := decodeContactList([]byte(`null`))
		if err != nil {
			t.Fatal(err)
		}
		if len(list.Contacts()) != 0 {
			t.Errorf("want no contacts, got %+v", list.Contacts())
		}
	})
}

func TestDecodeUploadResult(t *testing.T) {
	got, err := decodeUploadResult([]byte(`{"uploaded":12}`))
	if err != nil || got.Uploaded != 12 {
		t.Fatalf("object reply: %+v, %v", got, err)
	}
	got, err = decodeUploadResult([]byte(`[{"id":"1"},{"id":"2"}]`))
	if err != nil || got.Uploaded != 2 {
		t.Fatalf("array reply: %+v, %v", got, err)
	}
	if _, err := decodeUploadResult([]byte(`"ok"`)); err == nil {
		t.Fatal("want error for string reply")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail", `{"detail":"X"}`, "X"},
		{"validation list", `{"detail":[{"msg":"bad email"},{"msg":"short password"}]}`, "bad email; short password"},
		{"error key", `{"error":"Failed to create contact"}`, "Failed to create contact"},
		{"message key", `{"message":"nope"}`, "nope"},
		{"no message", `{"code":3}`, "Error 500"},
		{"unparsable", `<html>oops</html>`, unknownErrorMessage},
		{"empty", ``, unknownErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage(500, []byte(tt.body)); got != tt.want {
				t.Errorf("errorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
