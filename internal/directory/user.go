// Package directory holds the user record model, the links derived from it,
// and the client that fetches the users collection.
package directory

import (
	"fmt"
	"slices"
)

// FallbackName is shown in place of a user's name when the record has none.
const FallbackName = "User"

// MapsQueryURL is the map-provider template for a lat,lng query.
const MapsQueryURL = "https://www.google.com/maps?q=%s,%s"

// User is one record of the users collection.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// Address is a user's postal address.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo is a latitude/longitude pair. Both values are kept as the strings the
// endpoint returns.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company describes a user's employer.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// DisplayName returns the user's name, or FallbackName when it is empty.
func (u User) DisplayName() string {
	if u.Name == "" {
		return FallbackName
	}
	return u.Name
}

// Handle returns the username prefixed with "@".
func (u User) Handle() string {
	return "@" + u.Username
}

// MailtoURL returns the mailto: link for the user's email.
func (u User) MailtoURL() string {
	return "mailto:" + u.Email
}

// TelURL returns the tel: link for the user's phone number.
func (u User) TelURL() string {
	return "tel:" + u.Phone
}

// WebsiteURL returns the user's website as an https link.
func (u User) WebsiteURL() string {
	return "https://" + u.Website
}

// SingleLine formats the address as "street, suite, city, zipcode".
func (a Address) SingleLine() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.Street, a.Suite, a.City, a.Zipcode)
}

// CityLine formats the city and postal code as "city, zipcode".
func (a Address) CityLine() string {
	return fmt.Sprintf("%s, %s", a.City, a.Zipcode)
}

// MapURL returns the external map link for the coordinates.
func (g Geo) MapURL() string {
	return fmt.Sprintf(MapsQueryURL, g.Lat, g.Lng)
}

// Find returns the user with the given id.
func Find(users []User, id int) (User, bool) {
	if i := IndexOf(users, id); i >= 0 {
		return users[i], true
	}
	return User{}, false
}

// IndexOf returns the position of the user with the given id, or -1.
func IndexOf(users []User, id int) int {
	return slices.IndexFunc(users, func(u User) bool { return u.ID == id })
}

// Without returns a new slice holding every user except the one with the
// given id, in their original order. The input is not modified.
func Without(users []User, id int) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
