package role

import "testing"

func TestPermissionMatches(t *testing.T) {
	cases := []struct {
		name        string
		permissions []string
		permission  string
		want        bool
	}{
		{"exact grant", []string{"leave.manage"}, "leave.manage", true},
		{"no grant", []string{"leave.view"}, "leave.manage", false},
		{"global wildcard", []string{"*"}, "payroll.manage", true},
		{"prefix wildcard", []string{"leave.*"}, "leave.manage", true},
		{"prefix wildcard deep", []string{"leave.*"}, "leave.requests.approve", true},
		{"wildcard other prefix", []string{"leave.*"}, "payroll.manage", false},
		{"empty grants", nil, "leave.manage", false},
		{"case sensitive", []string{"Leave.Manage"}, "leave.manage", false},
	}
	for _, c := range cases {
		got := PermissionMatches(c.permissions, c.permission)
		if got != c.want {
			t.Errorf("%s: PermissionMatches(%v, %q) = %v, want %v", c.name, c.permissions, c.permission, got, c.want)
		}
	}
}
