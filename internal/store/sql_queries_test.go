package store

import (
	"strings"
	"testing"

	"github.com/veridict/veridict/models"
)

func TestBuildListVerificationsQuery_AllUsers(t *testing.T) {
	query, args, err := buildListVerificationsQuery(models.HistoryRequest{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "FROM verifications") {
		t.Errorf("expected query to select from verifications, got %q", query)
	}
	if !strings.Contains(query, `ORDER BY "timestamp" DESC`) {
		t.Errorf("expected newest-first ordering, got %q", query)
	}
	if !strings.Contains(query, "LIMIT 100") {
		t.Errorf("expected limit clause, got %q", query)
	}
	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no filter without a user id, got %q", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildListVerificationsQuery_ForUser(t *testing.T) {
	query, args, err := buildListVerificationsQuery(models.HistoryRequest{UserID: "u-1", Limit: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "WHERE user_id = $1") {
		t.Errorf("expected dollar-placeholder user filter, got %q", query)
	}
	if !strings.Contains(query, "LIMIT 25") {
		t.Errorf("expected limit clause, got %q", query)
	}
	if len(args) != 1 || args[0] != "u-1" {
		t.Errorf("expected args [u-1], got %v", args)
	}
}

func TestVerificationColumns_MatchInsertStatement(t *testing.T) {
	for _, column := range verificationColumns {
		bare := strings.Trim(column, `"`)
		if !strings.Contains(insertVerification, bare) {
			t.Errorf("column %q missing from insert statement", column)
		}
	}
}
