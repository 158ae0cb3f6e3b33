package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "обычный пароль",
			password: "tracker-2025",
		},
		{
			name:     "пароль со спецсимволами и кириллицей",
			password: "п@рОль!#₽",
		},
		{
			name:     "пароль минимальной длины",
			password: "8charsOK",
		},
		{
			name:     "пароль длиннее лимита bcrypt",
			password: strings.Repeat("x", 73),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			// Хэш не содержит исходный пароль и проходит обратную проверку
			assert.NotContains(t, hash, tt.password)
			assert.NoError(t, CompareHash(hash, tt.password))
		})
	}
}

func TestCompareHash(t *testing.T) {
	hash, err := GetHash("tracker-2025")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "верный пароль",
			password: "tracker-2025",
		},
		{
			name:     "неверный пароль",
			password: "tracker-2024",
			wantErr:  true,
		},
		{
			name:     "пустой пароль",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(hash, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetHash_Salted(t *testing.T) {
	// Одинаковые пароли дают разные хэши из-за соли
	first, err := GetHash("tracker-2025")
	require.NoError(t, err)
	second, err := GetHash("tracker-2025")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
