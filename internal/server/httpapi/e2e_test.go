package httpapi_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/client/appctx"
	"github.com/dmitrijs2005/gophaccount/internal/client/client"
	"github.com/dmitrijs2005/gophaccount/internal/client/flows"
	"github.com/dmitrijs2005/gophaccount/internal/client/models"
	"github.com/dmitrijs2005/gophaccount/internal/client/navigation"
	"github.com/dmitrijs2005/gophaccount/internal/server/config"
	"github.com/dmitrijs2005/gophaccount/internal/server/httpapi"
	"github.com/dmitrijs2005/gophaccount/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophaccount/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stillClock struct{}

type stillTimer struct{}

func (stillTimer) Stop() bool { return true }

func (stillClock) AfterFunc(time.Duration, func()) flows.Timer { return stillTimer{} }

func TestClientFlowsAgainstService(t *testing.T) {
	svc := services.NewUserService(repomanager.NewMemoryRepositoryManager(), &config.Config{BcryptCost: 4})
	srv := httptest.NewServer(httpapi.NewRouter(svc, nil))
	defer srv.Close()

	api, err := client.NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	defer api.Close()

	ctx := context.Background()
	nav := navigation.NewStack(navigation.ScreenLogin)

	nav.Push(navigation.ScreenRegister)
	reg := flows.NewRegistration(api, nav, nil)
	require.NoError(t, reg.Submit(ctx, models.UserDraft{Username: "alice", Password: "pw", ConfirmPassword: "pw"}))
	assert.Equal(t, navigation.ScreenLogin, nav.Current())

	nav.Push(navigation.ScreenRegister)
	err = reg.Submit(ctx, models.UserDraft{Username: "alice", Password: "pw", ConfirmPassword: "pw"})
	require.ErrorIs(t, err, client.ErrUsernameTaken)
	assert.Equal(t, navigation.ScreenRegister, nav.Current())
	nav.GoBack()

	app := appctx.New(false)
	app.SetUser(models.User{Username: "alice", Password: "pw"})
	nav.Push(navigation.ScreenSettings)

	settings := flows.NewSettings(api, app, nav, flows.WithClock(stillClock{}))
	require.NoError(t, settings.Mount(ctx))
	defer settings.Unmount()
	assert.True(t, settings.View().Loaded)

	settings.EditPassword("n3w")
	require.NoError(t, settings.Save(ctx))
	assert.Equal(t, models.NotificationSuccess, settings.Notification())

	stored, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, services.CheckPassword(stored, "n3w"))

	settings.Logout()
	assert.Equal(t, navigation.ScreenLogin, nav.Current())
}
