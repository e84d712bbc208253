package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlet-dev/hamlet/pkg/adapter"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/all"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{
			name:    "same framework",
			from:    adapter.FrameworkJest,
			to:      adapter.FrameworkJest,
			wantErr: ErrSameFramework,
		},
		{
			name:    "unknown source",
			from:    "qunit",
			to:      adapter.FrameworkJest,
			wantErr: ErrUnknownFramework,
		},
		{
			name:    "unknown target",
			from:    adapter.FrameworkJest,
			to:      "ava",
			wantErr: ErrUnknownFramework,
		},
		{
			name:    "unit to e2e",
			from:    adapter.FrameworkJest,
			to:      adapter.FrameworkCypress,
			wantErr: ErrParadigmMismatch,
		},
		{
			name:    "e2e to unit",
			from:    adapter.FrameworkPlaywright,
			to:      adapter.FrameworkMocha,
			wantErr: ErrParadigmMismatch,
		},
		{
			name: "valid unit pair",
			from: adapter.FrameworkJest,
			to:   adapter.FrameworkMocha,
		},
		{
			name: "valid e2e pair",
			from: adapter.FrameworkCypress,
			to:   adapter.FrameworkPlaywright,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := New(tt.from, tt.to)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, conv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from, conv.Source().Name)
			assert.Equal(t, tt.to, conv.Target().Name)
		})
	}
}

func TestParadigmMismatchNamesBothParadigms(t *testing.T) {
	_, err := New(adapter.FrameworkJest, adapter.FrameworkPlaywright)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit")
	assert.Contains(t, err.Error(), "e2e")
}

func TestConvertCypressToPlaywright(t *testing.T) {
	conv, err := New(adapter.FrameworkCypress, adapter.FrameworkPlaywright)
	require.NoError(t, err)

	source := `describe('button', () => {
  it('is visible', () => {
    cy.visit('/page');
    cy.get('#btn').should('be.visible');
  });
});
`

	res := conv.Convert(source)
	assert.Contains(t, res.Output, "await expect(page.locator('#btn')).toBeVisible()")
	assert.Contains(t, res.Output, "await page.goto('/page')")
	assert.Equal(t, StatusConverted, res.Status)
	assert.GreaterOrEqual(t, res.Confidence, 90)
	assert.Empty(t, res.Todos)
}

func TestConvertJestToMocha(t *testing.T) {
	conv, err := New(adapter.FrameworkJest, adapter.FrameworkMocha)
	require.NoError(t, err)

	source := `describe('handler', () => {
  it('notifies', () => {
    const fn = jest.fn();
    notify(fn);
    expect(fn).toHaveBeenCalled();
  });
});
`

	res := conv.Convert(source)
	assert.Contains(t, res.Output, "sinon.stub()")
	assert.Contains(t, res.Output, ".to.have.been.called")
	assert.NotContains(t, res.Output, "jest.fn")
}

func TestConvertUnsupportedConstructDegrades(t *testing.T) {
	conv, err := New(adapter.FrameworkCypress, adapter.FrameworkPlaywright)
	require.NoError(t, err)

	source := `it('seeds', () => {
  cy.task('seedDb');
});
`

	res := conv.Convert(source)
	assert.Contains(t, res.Output, "HAMLET-TODO")
	assert.Contains(t, res.Output, "// Original: cy.task('seedDb');")
	assert.Equal(t, StatusWarning, res.Status)
	require.NotEmpty(t, res.Todos)
	assert.Contains(t, res.Todos[0], "cy.task")
}

func TestConvertNeverFails(t *testing.T) {
	conv, err := New(adapter.FrameworkMocha, adapter.FrameworkJest)
	require.NoError(t, err)

	inputs := []string{
		"",
		"{",
		"\x00\x01binary\xffgarbage",
		strings.Repeat("}", 50),
	}

	for _, input := range inputs {
		res := conv.Convert(input)
		assert.GreaterOrEqual(t, res.Confidence, 0)
		assert.LessOrEqual(t, res.Confidence, 100)
	}
}

// Converting A->B, then B->A, then A->B again must reproduce the first
// A->B output exactly for constructs that round-trip cleanly.
func TestRoundTripStability(t *testing.T) {
	toPlaywright, err := New(adapter.FrameworkCypress, adapter.FrameworkPlaywright)
	require.NoError(t, err)
	toCypress, err := New(adapter.FrameworkPlaywright, adapter.FrameworkCypress)
	require.NoError(t, err)

	source := `describe('cart', () => {
  beforeEach(() => {
    cy.visit('/cart');
  });

  it('shows items', () => {
    cy.get('#list').should('be.visible');
  });
});
`

	first := toPlaywright.Convert(source)
	back := toCypress.Convert(first.Output)
	second := toPlaywright.Convert(back.Output)

	assert.Equal(t, first.Output, second.Output)
	assert.Empty(t, first.Todos)
	assert.Empty(t, back.Todos)
}
