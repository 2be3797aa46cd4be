// Package fake builds synthetic Nigerian identities and contact details.
package fake

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/locale"
	"github.com/xavierca1/evangelism-crm/internal/random"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	minAge = 18
	maxAge = 70
)

var genders = []string{GenderMale, GenderFemale}

// Address is a generated postal address. Area and LGA always belong to State.
type Address struct {
	Street      string `json:"street"`
	Area        string `json:"area"`
	City        string `json:"city"`
	LGA         string `json:"lga"`
	State       string `json:"state"`
	FullAddress string `json:"full_address"`
}

// Person is a transient identity used to fill users and converts.
type Person struct {
	FirstName   string
	LastName    string
	Gender      string
	Phone       string
	Email       string
	DateOfBirth time.Time
	Address     Address
	Occupation  string
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Generator draws every value from its Source, so a seeded source gives a
// reproducible run.
type Generator struct {
	src random.Source
	now func() time.Time
}

func NewGenerator(src random.Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{src: src, now: now}
}

// Phone returns an 11 digit mobile number: a carrier prefix then 7 digits.
func (g *Generator) Phone() string {
	return random.Pick(g.src, locale.PhonePrefixes) + random.Digits(g.src, 7)
}

// Email picks one of the common local-part patterns and a webmail domain.
func (g *Generator) Email(firstName, lastName string) string {
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)

	var local string
	switch g.src.IntRange(0, 6) {
	case 0:
		local = first + "." + last
	case 1:
		local = first + last
	case 2:
		local = first + "_" + last
	case 3:
		local = fmt.Sprintf("%s%s%d", first, last, g.src.IntRange(1, 999))
	case 4:
		local = last + "." + first
	case 5:
		local = initial(first) + last
	default:
		local = first + initial(last)
	}
	return local + "@" + random.Pick(g.src, locale.EmailDomains)
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

// Address builds an address in state, or in a random state when state is empty.
// A non-empty area is used as given.
func (g *Generator) Address(state, area string) (Address, error) {
	var st locale.State
	if state == "" {
		st = random.Pick(g.src, locale.States)
	} else {
		var ok bool
		st, ok = locale.LookupState(state)
		if !ok {
			return Address{}, fmt.Errorf("%w: %q", entity.ErrUnknownState, state)
		}
	}

	lga := random.Pick(g.src, st.LGAs)
	if area == "" {
		area = random.Pick(g.src, st.Areas)
	}
	street := fmt.Sprintf("%d %s %s",
		g.src.IntRange(1, 200),
		random.Pick(g.src, locale.StreetNames),
		random.Pick(g.src, locale.StreetTypes),
	)

	return Address{
		Street:      street,
		Area:        area,
		City:        st.Capital,
		LGA:         lga,
		State:       st.Name,
		FullAddress: fmt.Sprintf("%s, %s, %s, %s, Nigeria", street, area, lga, st.Name),
	}, nil
}

// Person composes a full identity. An empty gender is drawn uniformly.
func (g *Generator) Person(gender string) Person {
	if gender != GenderMale && gender != GenderFemale {
		gender = random.Pick(g.src, genders)
	}

	first := random.Pick(g.src, locale.FemaleFirstNames)
	if gender == GenderMale {
		first = random.Pick(g.src, locale.MaleFirstNames)
	}
	last := random.Pick(g.src, locale.Surnames)

	age := g.src.IntRange(minAge, maxAge)
	days := age*365 + g.src.IntRange(0, 365)
	today := truncateDay(g.now())
	dob := today.AddDate(0, 0, -days)

	// empty state never fails
	addr, _ := g.Address("", "")

	return Person{
		FirstName:   first,
		LastName:    last,
		Gender:      gender,
		Phone:       g.Phone(),
		Email:       g.Email(first, last),
		DateOfBirth: dob,
		Address:     addr,
		Occupation:  random.Pick(g.src, locale.Occupations),
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
