package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
)

func TestListAll_ReturnsTournaments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tournaments", r.URL.Path)
		w.Write([]byte(`[
			{"id":"t1","name":"Summer Cup","city":"Pune","entryFee":2500,"teamLimit":16},
			{"id":"t2","name":"Monsoon Trophy","city":"Mumbai","entryFee":3000,"teamLimit":8}
		]`))
	}))
	defer server.Close()

	cfg := common.NewDefaultConfig().Collaborator
	cfg.TournamentServiceURL = server.URL
	client := NewTournamentClient(cfg, common.GetLogger())

	tournaments, err := client.ListAll(context.Background(), models.ActorContext{Authenticated: true, Token: "tok"})

	require.NoError(t, err)
	require.Len(t, tournaments, 2)
	assert.Equal(t, "Summer Cup", tournaments[0].Name)
	assert.Equal(t, "Mumbai", tournaments[1].City)
}

func TestListAll_ErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := common.NewDefaultConfig().Collaborator
	cfg.TournamentServiceURL = server.URL
	client := NewTournamentClient(cfg, common.GetLogger())

	_, err := client.ListAll(context.Background(), models.ActorContext{})
	assert.Error(t, err)
}

func TestForTournament_PassesTournamentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/schedules", r.URL.Path)
		require.Equal(t, "t1", r.URL.Query().Get("tournament"))
		w.Write([]byte(`[{"id":"m1","tournamentId":"t1","teamA":"Strikers","teamB":"Blasters","venue":"Pune"}]`))
	}))
	defer server.Close()

	cfg := common.NewDefaultConfig().Collaborator
	cfg.SchedulerServiceURL = server.URL
	cfg.RequestTimeout = common.Duration(2 * time.Second)
	client := NewScheduleClient(cfg, common.GetLogger())

	matches, err := client.ForTournament(context.Background(), models.ActorContext{Token: "tok"}, "t1")

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Strikers", matches[0].TeamA)
}
