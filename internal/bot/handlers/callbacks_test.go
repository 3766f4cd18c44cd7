package handlers

import "testing"

func TestCallbackRoundTrip(t *testing.T) {
	for _, a := range []action{actionApprove, actionReject, actionActivityPhotos, actionMyPhotos, actionStudentPhotos} {
		in := callbackData{Action: a, ID: "42"}
		out, ok := parseCallback(in.encode())
		if !ok || out != in {
			t.Fatalf("раунд-трип %q: ok=%v out=%+v", in.encode(), ok, out)
		}
	}
}

func TestParseCallback_Invalid(t *testing.T) {
	for _, data := range []string{"", "approve", "approve:", ":42", "unknown:42"} {
		if _, ok := parseCallback(data); ok {
			t.Fatalf("%q не должен разбираться", data)
		}
	}
}
