package roles

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMinimumAdmitsAtOrAboveRank(t *testing.T) {
	all := []Role{SuperAdmin, Admin, Worker, Unreachable}
	thresholds := []Role{SuperAdmin, Admin, Worker}

	for _, threshold := range thresholds {
		req := Minimum(threshold)
		for _, caller := range all {
			err := req.Check(caller)
			admitted := caller.Rank() > 0 && caller.Rank() >= threshold.Rank()
			if admitted && err != nil {
				t.Fatalf("Minimum(%s) rejected %s: %v", threshold, caller, err)
			}
			if !admitted {
				if err == nil {
					t.Fatalf("Minimum(%s) admitted %s", threshold, caller)
				}
				if !errors.Is(err, ErrInsufficientRole) {
					t.Fatalf("unexpected error type: %v", err)
				}
			}
		}
	}
}

func TestExactAdmitsOnlyIdenticalRole(t *testing.T) {
	req := Exact(Admin)

	if err := req.Check(Admin); err != nil {
		t.Fatalf("exact admin check rejected admin: %v", err)
	}
	if err := req.Check(SuperAdmin); err == nil {
		t.Fatal("exact admin check admitted super admin")
	}
	if err := req.Check(Worker); err == nil {
		t.Fatal("exact admin check admitted worker")
	}
	if err := req.Check(Unreachable); err == nil {
		t.Fatal("exact admin check admitted unreachable")
	}
}

func TestExactUnreachableAdmitsNothing(t *testing.T) {
	req := Exact(Unreachable)
	for _, caller := range []Role{SuperAdmin, Admin, Worker, Unreachable} {
		if err := req.Check(caller); err == nil {
			t.Fatalf("exact unreachable check admitted %s", caller)
		}
	}
}

func TestNoneAdmitsEveryRole(t *testing.T) {
	req := None()
	for _, caller := range []Role{SuperAdmin, Admin, Worker, Unreachable} {
		if err := req.Check(caller); err != nil {
			t.Fatalf("none requirement rejected %s: %v", caller, err)
		}
	}
}

func TestCheckErrorMessageIsStable(t *testing.T) {
	err := Minimum(SuperAdmin).Check(Worker)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if err.Error() != "Role does not have sufficient permissions" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	cases := map[string]Role{
		"Super Admin": SuperAdmin,
		"super admin": SuperAdmin,
		"ADMIN":       Admin,
		" worker ":    Worker,
	}
	for input, want := range cases {
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %s, want %s", input, got, want)
		}
	}
}

func TestParseRejectsUnknownAndUnreachable(t *testing.T) {
	for _, input := range []string{"root", "", "Unreachable"} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("parse %q unexpectedly succeeded", input)
		}
	}

	_, err := Parse("root")
	if err.Error() != "Invalid user role: root" {
		t.Fatalf("unexpected parse error message: %q", err.Error())
	}
}

func TestRoleJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Admin)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"Admin"` {
		t.Fatalf("unexpected encoding: %s", data)
	}

	var decoded Role
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != Admin {
		t.Fatalf("round trip mismatch: %s", decoded)
	}

	if err := json.Unmarshal([]byte(`"Unreachable"`), &decoded); err == nil {
		t.Fatal("unmarshal accepted unreachable")
	}
}
