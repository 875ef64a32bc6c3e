package dashboard

import (
	"strings"
	"time"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	// MaxMessageChars is the longest message the compose screen accepts.
	MaxMessageChars = 160

	// DefaultPreviewPhone is shown in the phone header when no contact is picked.
	DefaultPreviewPhone = "890720"

	EncodingGSM7 = "GSM-7"
	EncodingUCS2 = "UCS-2"
)

const (
	gsm7Basic     = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"
	gsm7Extension = "\f^{}\\[~]|€"
)

// Preview is what the phone mockup next to the compose box shows.
type Preview struct {
	Content      string `json:"content"`
	Empty        bool   `json:"empty"`
	Chars        int    `json:"chars"`
	MaxChars     int    `json:"max_chars"`
	Remaining    int    `json:"remaining"`
	OverLimit    bool   `json:"over_limit"`
	Encoding     string `json:"encoding"`
	Segments     int    `json:"segments"`
	ContactPhone string `json:"contact_phone"`
	Time         string `json:"time"`
	Date         string `json:"date"`
}

// BuildPreview renders the live preview of content as it would arrive on the
// contact's phone at now.
func BuildPreview(content, contactPhone string, now time.Time) Preview {
	if contactPhone == "" {
		contactPhone = DefaultPreviewPhone
	}
	chars := utf8.RuneCountInString(content)
	encoding, segments := smsSegments(content)

	return Preview{
		Content:      content,
		Empty:        strings.TrimSpace(content) == "",
		Chars:        chars,
		MaxChars:     MaxMessageChars,
		Remaining:    MaxMessageChars - chars,
		OverLimit:    chars > MaxMessageChars,
		Encoding:     encoding,
		Segments:     segments,
		ContactPhone: contactPhone,
		Time:         now.Format("15:04"),
		Date:         now.Format("Monday, January 2, 2006"),
	}
}

// smsSegments picks the encoding a carrier would use for content and counts
// the SMS parts needed to deliver it.
func smsSegments(content string) (string, int) {
	if content == "" {
		return EncodingGSM7, 0
	}

	septets, gsm := 0, true
	for _, r := range content {
		switch {
		case strings.ContainsRune(gsm7Basic, r):
			septets++
		case strings.ContainsRune(gsm7Extension, r):
			septets += 2
		default:
			gsm = false
		}
		if !gsm {
			break
		}
	}

	if gsm {
		return EncodingGSM7, parts(septets, 160, 153)
	}
	units := len(utf16.Encode([]rune(content)))
	return EncodingUCS2, parts(units, 70, 67)
}

func parts(units, single, multi int) int {
	if units <= single {
		return 1
	}
	return (units + multi - 1) / multi
}
