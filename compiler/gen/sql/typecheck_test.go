package sql

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/syssam/pgmodel/compiler/gen"
	"github.com/syssam/pgmodel/compiler/load"
)

// modelTest exercises the generated package from inside it.
const modelTest = `package model

import "testing"

func TestGeneratedModels(t *testing.T) {
	s, err := ParseOrderStatus("shipped")
	if err != nil || s != OrderStatus_SHIPPED {
		t.Fatalf("ParseOrderStatus(shipped) = %v, %v", s, err)
	}
	if _, err := ParseOrderStatus("cancelled"); err == nil {
		t.Fatal("ParseOrderStatus(cancelled) succeeded")
	}

	a := NewAccountModel(0).SetName("alice").SetOwner(NewUserModel(7))
	if o := a.Owner(); o == nil || o.ID != 7 {
		t.Fatalf("Owner() = %v", o)
	}
	a.SetOwner(nil)
	if o := a.Owner(); o == nil || o.ID != 7 {
		t.Fatalf("SetOwner(nil) changed the owner: %v", o)
	}

	u := NewUserModel(1).SetParent(NewUserModel(2))
	if p := u.Parent(); p == nil || p.ID != 2 {
		t.Fatalf("Parent() = %v", p)
	}
	u.SetParent(nil)
	if p := u.Parent(); p != nil {
		t.Fatalf("Parent() after SetParent(nil) = %v", p)
	}

	loaded := &UserModel{}
	err = loaded.Load(map[string]any{"id": int64(5), "email": "a@example.com", "parent_id": nil})
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ID != 5 || loaded.Email() != "a@example.com" || loaded.Parent() != nil {
		t.Fatalf("Load gave id=%d email=%q parent=%v", loaded.ID, loaded.Email(), loaded.Parent())
	}
	if len(loaded.Changes()) != 0 {
		t.Fatalf("Load recorded changes: %v", loaded.Changes())
	}

	o := NewOrderModel(0).SetStatus(OrderStatus_PENDING)
	if o.Status() != OrderStatus_PENDING || o.PreviousStatus() != nil || o.Tz() != nil {
		t.Fatal("unexpected order values")
	}
}
`

// generateIntoModule writes the test graph below testdata so that the
// generated package resolves imports against this module.
func generateIntoModule(t *testing.T) string {
	t.Helper()
	require.NoError(t, os.MkdirAll("testdata", 0o755))
	root, err := os.MkdirTemp("testdata", "gen")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(root) })

	cfg, err := gen.NewConfig(gen.WithTarget(root))
	require.NoError(t, err)
	g := gen.NewGraph(cfg, orderStatus, []*load.Table{accounts, users, invoices, orders})
	_, err = Generate(context.Background(), g)
	require.NoError(t, err)
	dir, err := filepath.Abs(g.Dir())
	require.NoError(t, err)
	return dir
}

func TestGeneratedPackageTypeChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the generated package with the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not found")
	}
	dir := generateIntoModule(t)
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	for _, e := range pkgs[0].Errors {
		t.Errorf("%s", e)
	}
	require.Equal(t, "model", pkgs[0].Name)
	require.NotNil(t, pkgs[0].Types.Scope().Lookup("AccountDAO"))
}

func TestGeneratedPackageBehavior(t *testing.T) {
	if testing.Short() {
		t.Skip("runs go test on the generated package")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not found")
	}
	dir := generateIntoModule(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model_test.go"), []byte(modelTest), 0o644))

	cmd := exec.Command(goBin, "test", "-count=1", ".")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}
