package integration

import (
	"net/http"
	"testing"

	"aula/pkg/model"
	"aula/test/integration/testutil"

	"go.mongodb.org/mongo-driver/bson"
)

func TestResolveConflict_DivertsToFreeRoom(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	// Arrange: the conflicted allocation sits in LT1, which is fully
	// booked; LT2 is free.
	mongo.InsertDocument(t, testutil.LectureRoomsCollection, testutil.AvailableRoom("LT1"))
	mongo.InsertDocument(t, testutil.LectureRoomsCollection, testutil.AvailableRoom("LT2"))
	mongo.InsertDocument(t, testutil.TimetablesCollection, testutil.NewAllocationBuilder("alloc-001").Build())
	mongo.InsertDocument(t, testutil.TimetablesCollection,
		testutil.NewAllocationBuilder("alloc-002").WithRoom("LT1").WithWindow("9:00 AM", "11:00 AM").Build())

	// Act
	resp := client.POST(t, "/resolve-conflict", testutil.ResolveRequest("alloc-001"))

	// Assert
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var outcome model.ResolutionOutcome
	if err := resp.DecodeJSON(&outcome); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if outcome.ResolvedVenue != "LT2" {
		t.Errorf("expected resolvedVenue LT2, got %q", outcome.ResolvedVenue)
	}
	if outcome.Status != model.StatusDiverted {
		t.Errorf("expected status diverted, got %q", outcome.Status)
	}

	// The allocation is patched, not overwritten.
	var updated model.Allocation
	mongo.FindOne(t, testutil.TimetablesCollection, bson.M{"_id": "alloc-001"}, &updated)
	if updated.ResolvedVenue != "LT2" {
		t.Errorf("expected resolved_venue LT2 in store, got %q", updated.ResolvedVenue)
	}
	if updated.Conflict {
		t.Error("expected conflict flag cleared")
	}
	if updated.CourseCode != "CSC301" {
		t.Errorf("untouched fields must survive the update, got course_code %q", updated.CourseCode)
	}

	if count := mongo.CountDocuments(t, testutil.DecisionLogsCollection); count != 1 {
		t.Errorf("expected 1 decision log entry, got %d", count)
	}
}

func TestResolveConflict_AllocationNotFound(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	mongo.InsertDocument(t, testutil.LectureRoomsCollection, testutil.AvailableRoom("LT1"))

	resp := client.POST(t, "/resolve-conflict", testutil.ResolveRequest("alloc-missing"))

	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	if count := mongo.CountDocuments(t, testutil.DecisionLogsCollection); count != 0 {
		t.Errorf("no decision log expected for a missing allocation, got %d", count)
	}
}

func TestResolveConflict_NoRoomFree(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	mongo.InsertDocument(t, testutil.LectureRoomsCollection, testutil.AvailableRoom("LT1"))
	mongo.InsertDocument(t, testutil.TimetablesCollection, testutil.NewAllocationBuilder("alloc-001").Build())
	mongo.InsertDocument(t, testutil.TimetablesCollection,
		testutil.NewAllocationBuilder("alloc-002").WithRoom("LT1").WithWindow("9:00 AM", "1:00 PM").Build())

	resp := client.POST(t, "/resolve-conflict", testutil.ResolveRequest("alloc-001"))

	testutil.AssertStatusCode(t, resp, http.StatusConflict)
	testutil.AssertContains(t, resp, "NO_ROOM_AVAILABLE")

	// The conflicted allocation stays pending.
	var untouched model.Allocation
	mongo.FindOne(t, testutil.TimetablesCollection, bson.M{"_id": "alloc-001"}, &untouched)
	if !untouched.Conflict || untouched.ResolvedVenue != "" {
		t.Errorf("allocation must be untouched when no room is free: %+v", untouched)
	}
}

func TestResolveConflict_ValidationRejectsBadTime(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	req := testutil.ResolveRequest("alloc-001")
	req["startTime"] = "13:00"

	resp := client.POST(t, "/resolve-conflict", req)

	testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
	testutil.AssertContains(t, resp, "startTime")
}

func TestGetAllocations_ListsTimetable(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	mongo.InsertDocument(t, testutil.TimetablesCollection, testutil.NewAllocationBuilder("alloc-001").Build())
	mongo.InsertDocument(t, testutil.TimetablesCollection, testutil.NewAllocationBuilder("alloc-002").Build())

	resp := client.GET(t, "/allocations")

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var list struct {
		Data  []model.Allocation `json:"data"`
		Count int                `json:"count"`
	}
	if err := resp.DecodeJSON(&list); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if list.Count != 2 || len(list.Data) != 2 {
		t.Errorf("expected 2 allocations, got count=%d len=%d", list.Count, len(list.Data))
	}
}
