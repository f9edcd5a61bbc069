package pricer

import "testing"

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name string
		item string
		city string
		want string
	}{
		{
			name: "товар с городом",
			item: "Chair",
			city: "Austin",
			want: `city="Austin" item="Chair"`,
		},
		{
			name: "товар без города",
			item: "Chair",
			city: "",
			want: `city="" item="Chair"`,
		},
		{
			name: "товар из нескольких слов",
			item: "Office Chair",
			city: "New York",
			want: `city="New York" item="Office Chair"`,
		},
		{
			name: "кавычки в названии экранируются",
			item: `17" Monitor`,
			city: "Dallas",
			want: `city="Dallas" item="17\" Monitor"`,
		},
		{
			name: "кириллица",
			item: "Стул",
			city: "Казань",
			want: `city="Казань" item="Стул"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cacheKey(tt.item, tt.city)
			if got != tt.want {
				t.Errorf("cacheKey(%q, %q) = %q, want %q", tt.item, tt.city, got, tt.want)
			}
		})
	}
}

// Склейка город+товар без разделителя давала бы один ключ для разных запросов.
// Ключ с кавычками обязан их различать.
func TestCacheKey_NoConcatenationCollision(t *testing.T) {
	a := cacheKey("Car", "NY")  // city="NY" item="Car"
	b := cacheKey("YCar", "N")  // city="N" item="YCar"
	if a == b {
		t.Errorf("ключи совпали: %q", a)
	}
}
