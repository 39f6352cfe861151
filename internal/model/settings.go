// File: internal/model/settings.go
package model

type Settings struct {
	AllowSignups bool `db:"allow_signups" json:"allow_signups"`
}
