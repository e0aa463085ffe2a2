package container_test

import (
	"testing"

	"github.com/sghaida/codi/container"
	"github.com/sghaida/codi/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type secretVault struct {
	Token string
}

type vaultClient struct {
	Token string
}

func newVaultFactory(opts ...di.FactoryOption) *di.Factory[*secretVault] {
	return di.MustFactory[*secretVault](
		di.KeyOf[*secretVault](),
		func(_ []any) (*secretVault, error) {
			return &secretVault{Token: "s3cr3t"}, nil
		},
		opts...,
	)
}

func TestPrivateContainer_ExposedBindingPromotedToParent(t *testing.T) {
	t.Parallel()

	parent := container.New()
	child := parent.NewPrivate()

	// the factory requests exposure; the child is a PrivateBinder so the
	// request lands without a diagnostic
	clientFactory := di.MustFactory[*vaultClient](
		di.KeyOf[*vaultClient](),
		func(args []any) (*vaultClient, error) {
			return &vaultClient{Token: args[0].(*secretVault).Token}, nil
		},
		di.WithResolvers(container.ResolverFor[*secretVault](child, di.KeyOf[*secretVault]())),
		di.Exposed(),
	)

	child.Install(newVaultFactory(), clientFactory)
	require.NoError(t, child.Finalize())
	require.NoError(t, parent.Finalize())

	// exposed key resolves from the parent
	p, err := container.Provider[*vaultClient](parent, di.KeyOf[*vaultClient]())
	require.NoError(t, err)
	client, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", client.Token)

	// the unexposed vault stays private
	assert.False(t, parent.Bound(di.KeyOf[*secretVault]()))
	_, err = container.Provider[*secretVault](parent, di.KeyOf[*secretVault]())
	var nb container.NotBoundError
	require.ErrorAs(t, err, &nb)
}

func TestPrivateContainer_ChildFallsBackToParent(t *testing.T) {
	t.Parallel()

	parent := container.New()
	parent.Install(newConfigFactory(nil))

	child := parent.NewPrivate()
	child.Install(newVaultFactory())

	require.NoError(t, child.Finalize())
	require.NoError(t, parent.Finalize())

	// a key the child never bound resolves through the parent
	p, err := container.Provider[*appConfig](child, di.KeyOf[*appConfig]())
	require.NoError(t, err)
	cfg, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "postgres://prod", cfg.DSN)
}

func TestPrivateContainer_ExposureOnPlainContainerDiagnosed(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Install(newVaultFactory(di.Exposed()))

	err := c.Finalize()
	require.Error(t, err)

	diags := c.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "privacy-scoped")
}

func TestPrivateContainer_ExposedUnboundKeyDiagnosed(t *testing.T) {
	t.Parallel()

	parent := container.New()
	child := parent.NewPrivate()
	child.Expose(di.KeyOf[*secretVault]())

	err := child.Finalize()
	require.Error(t, err)

	diags := child.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "not bound in the private container")
}

func TestPrivateContainer_PromotionConflictDiagnosed(t *testing.T) {
	t.Parallel()

	parent := container.New()
	parent.Install(newVaultFactory())

	child := parent.NewPrivate()
	child.Install(newVaultFactory(di.Exposed()))

	err := child.Finalize()
	require.Error(t, err)

	diags := child.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "conflicts with an existing parent binding")

	// the parent keeps its own binding
	require.NoError(t, parent.Finalize())
	p, err := container.Provider[*secretVault](parent, di.KeyOf[*secretVault]())
	require.NoError(t, err)
	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", v.Token)
}

func TestPrivateContainer_ExposeAfterFinalizeDiagnosed(t *testing.T) {
	t.Parallel()

	parent := container.New()
	child := parent.NewPrivate()
	require.NoError(t, child.Finalize())

	child.Expose(di.KeyOf[*secretVault]())

	diags := child.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "after finalize is ignored")
}
