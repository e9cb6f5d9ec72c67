package domain

import (
	"reflect"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{" Admin ", RoleAdmin},
		{"MODERATOR", RoleModerator},
		{"moderator", RoleModerator},
		{"USER", RoleUser},
		{"user", RoleUser},
		{"bogus", RoleUser},
		{"", RoleUser},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestResolveRoles(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []Role
	}{
		{"nil defaults to USER", nil, []Role{RoleUser}},
		{"empty defaults to USER", []string{}, []Role{RoleUser}},
		{"case-insensitive admin", []string{"admin"}, []Role{RoleAdmin}},
		{"unknown falls back to USER", []string{"bogus"}, []Role{RoleUser}},
		{"deduplicates", []string{"user", "bogus", "USER"}, []Role{RoleUser}},
		{"mixed set", []string{"admin", "moderator"}, []Role{RoleAdmin, RoleModerator}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRoles(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ResolveRoles(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPrincipalAuthorities(t *testing.T) {
	p := &Principal{Authorities: []string{"USER", "MODERATOR"}}

	if !p.HasAuthority("USER") {
		t.Fatalf("expected USER authority")
	}
	if p.HasAuthority("ADMIN") {
		t.Fatalf("unexpected ADMIN authority")
	}
	if !p.HasAnyAuthority("ADMIN", "MODERATOR") {
		t.Fatalf("expected any-of match on MODERATOR")
	}
	if p.HasAnyAuthority("ADMIN") {
		t.Fatalf("any-of must fail when no authority matches")
	}
}
