package cleaning

import (
	"sort"
	"strings"
)

// CanonicalColumns is the fixed set of recognized contact fields, in
// output order.
var CanonicalColumns = []string{"name", "phone", "email", "company", "job_title", "city", "notes"}

// columnVariants maps each canonical column to the header spellings seen
// in real uploads, English and Arabic. Matching happens on the
// normalized form of both sides; the first matching variant wins.
var columnVariants = map[string][]string{
	"name": {
		"name", "full_name", "fullname", "full name", "contact_name",
		"الاسم", "اسم العميل", "الاسم الكامل", "اسم",
	},
	"phone": {
		"phone", "mobile", "mobile_phone", "tel", "telephone", "cell", "phone_number",
		"الجوال", "رقم الجوال", "رقم الهاتف", "جوال", "موبايل", "هاتف",
	},
	"email": {
		"email", "e-mail", "mail", "email_address", "e_mail",
		"البريد", "البريد الإلكتروني", "الايميل", "ايميل", "بريد",
	},
	"company": {
		"company", "company_name", "issuer", "organization", "org",
		"الشركة", "جهة العمل", "المؤسسة", "اسم الشركة", "شركة",
	},
	"job_title": {
		"job_title", "position", "title", "job", "role",
		"المسمى الوظيفي", "الوظيفة", "المنصب", "الدور",
	},
	"city": {
		"city", "location", "place", "region",
		"المدينة", "الموقع", "المنطقة",
	},
	"notes": {
		"notes", "note", "comments", "remarks", "description",
		"ملاحظات", "تعليقات", "وصف",
	},
}

// variantIndex is the precomputed normalized-variant -> canonical lookup.
var variantIndex = buildVariantIndex()

func buildVariantIndex() map[string]string {
	index := make(map[string]string)
	for canonical, variants := range columnVariants {
		for _, v := range variants {
			normalized := NormalizeHeader(v)
			if _, exists := index[normalized]; !exists {
				index[normalized] = canonical
			}
		}
	}
	return index
}

// NormalizeHeader prepares a column label for variant matching:
// lowercase, trimmed, separators collapsed to single spaces.
func NormalizeHeader(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.NewReplacer("_", " ", "-", " ", ".", "").Replace(label)
	return strings.Join(strings.Fields(label), " ")
}

// MapColumn resolves a raw column label to its canonical column name.
// Unrecognized labels are returned unchanged.
func MapColumn(label string) string {
	if canonical, ok := variantIndex[NormalizeHeader(label)]; ok {
		return canonical
	}
	return label
}

// MapRow translates one raw row into a canonical Record at the given
// input position. Unmapped columns land in Extra untouched. Source keys
// are visited in sorted order so that two source columns mapping to the
// same canonical field resolve deterministically (first in sort order
// wins; later non-empty values fill only still-empty fields).
func MapRow(row Row, position int) *Record {
	rec := &Record{
		Position:         position,
		DuplicateGroupID: NoGroup,
	}

	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := row[key]
		switch MapColumn(key) {
		case "name":
			setIfEmpty(&rec.Name, value)
		case "phone":
			setIfEmpty(&rec.Phone, value)
		case "email":
			setIfEmpty(&rec.Email, value)
		case "company":
			setIfEmpty(&rec.Company, value)
		case "job_title":
			setIfEmpty(&rec.JobTitle, value)
		case "city":
			setIfEmpty(&rec.City, value)
		case "notes":
			setIfEmpty(&rec.Notes, value)
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[key] = value
		}
	}

	return rec
}

func setIfEmpty(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
