package gpumon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderMetrics(t *testing.T) {
	records := []Record{
		{
			SKU: "655321", Brand: "Gigabyte", Family: "RTX 5070 Ti",
			Model: "Gaming OC", MemorySize: "16GB", Stock: 0, Price: 829.99,
		},
		{
			SKU: "683422", Brand: "ASUS", Family: "RTX 5090",
			Model: "TUF", MemorySize: "24GB", Stock: 5, Price: 1299.99,
		},
	}

	expected := `gpu_stock{brand="Gigabyte",family="RTX 5070 Ti",model="Gaming OC",memorySize="16GB",sku="655321"} 0
gpu_price{brand="Gigabyte",family="RTX 5070 Ti",model="Gaming OC",memorySize="16GB",sku="655321"} 829.99
gpu_stock{brand="ASUS",family="RTX 5090",model="TUF",memorySize="24GB",sku="683422"} 5
gpu_price{brand="ASUS",family="RTX 5090",model="TUF",memorySize="24GB",sku="683422"} 1299.99
`

	require.Equal(t, expected, RenderMetrics(records))
}

func TestRenderMetricsIdempotent(t *testing.T) {
	store := NewStore()
	store.Upsert(Record{SKU: "683422", Brand: "ASUS", Family: "RTX 5090", Model: "TUF", MemorySize: "24GB", Stock: 5, Price: 1299.99})
	store.Upsert(Record{SKU: "655321", Brand: Unknown, Family: Unknown, Model: "Arc B580", MemorySize: "12GB"})

	first := RenderMetrics(store.Snapshot())
	second := RenderMetrics(store.Snapshot())
	require.Equal(t, first, second)
}

func TestRenderMetricsEmptyStore(t *testing.T) {
	require.Equal(t, "", RenderMetrics(NewStore().Snapshot()))
}
