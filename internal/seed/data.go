package seed

import (
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
	"github.com/sanvicreation/boutique-backend/internal/modules/sales"
	"github.com/sanvicreation/boutique-backend/internal/modules/supplier"
)

var products = []catalog.Product{
	{ID: 1, Name: "Classic Blue T-Shirt", Description: "A comfortable and stylish 100% cotton t-shirt.", Price: 25.00, ImageURL: "https://picsum.photos/seed/product1/600/800", Category: "Tops", Stock: 50},
	{ID: 2, Name: "Slim Fit Denim Jeans", Description: "Modern slim fit jeans, perfect for any casual occasion.", Price: 75.00, ImageURL: "https://picsum.photos/seed/product2/600/800", Category: "Bottoms", Stock: 30},
	{ID: 3, Name: "Leather Biker Jacket", Description: "A timeless piece, this genuine leather jacket adds an edge to any outfit.", Price: 250.00, ImageURL: "https://picsum.photos/seed/product3/600/800", Category: "Outerwear", Stock: 15},
	{ID: 4, Name: "V-Neck Cashmere Sweater", Description: "Luxuriously soft and warm, made from 100% pure cashmere.", Price: 120.00, ImageURL: "https://picsum.photos/seed/product4/600/800", Category: "Tops", Stock: 25},
	{ID: 5, Name: "Chino Shorts", Description: "Breathable and versatile chino shorts for warm weather.", Price: 45.00, ImageURL: "https://picsum.photos/seed/product5/600/800", Category: "Bottoms", Stock: 40},
	{ID: 6, Name: "Wool Peacoat", Description: "A classic double-breasted peacoat to keep you warm in style.", Price: 180.00, ImageURL: "https://picsum.photos/seed/product6/600/800", Category: "Outerwear", Stock: 20},
	{ID: 7, Name: "Linen Button-Up Shirt", Description: "Lightweight and airy, perfect for summer days or vacation.", Price: 60.00, ImageURL: "https://picsum.photos/seed/product7/600/800", Category: "Tops", Stock: 35},
	{ID: 8, Name: "Cargo Pants", Description: "Durable and functional cargo pants with plenty of pocket space.", Price: 65.00, ImageURL: "https://picsum.photos/seed/product8/600/800", Category: "Bottoms", Stock: 28},
}

var orders = []order.Order{
	{ID: "ORD-001", CustomerName: "Harsha vardhan N", Date: "2024-08-01", Total: 100.00, Status: order.StatusDelivered, Items: []order.LineItem{{Product: products[0], Quantity: 1}, {Product: products[1], Quantity: 1}}},
	{ID: "ORD-002", CustomerName: "Twinkle Tanya Britto", Date: "2024-08-02", Total: 250.00, Status: order.StatusShipped, Items: []order.LineItem{{Product: products[2], Quantity: 1}}},
	{ID: "ORD-003", CustomerName: "Amar K", Date: "2024-08-03", Total: 90.00, Status: order.StatusPending, Items: []order.LineItem{{Product: products[4], Quantity: 2}}},
	{ID: "ORD-004", CustomerName: "Jane Smith", Date: "2024-08-04", Total: 180.00, Status: order.StatusDelivered, Items: []order.LineItem{{Product: products[3], Quantity: 1}, {Product: products[6], Quantity: 1}}},
}

var suppliers = []supplier.Supplier{
	{ID: 1, Name: "Bangalore Textiles Co.", ContactPerson: "Ravi Kumar", Email: "ravi@bangaloretextiles.com", Phone: "987-654-3210"},
	{ID: 2, Name: "Karnataka Garments", ContactPerson: "Priya Singh", Email: "priya@karnatakagarments.com", Phone: "876-543-2109"},
	{ID: 3, Name: "Deccan Apparel", ContactPerson: "Anil Desai", Email: "anil@deccanapparel.net", Phone: "765-432-1098"},
}

var salesData = []sales.Point{
	{Month: "Mar", Sales: 2400},
	{Month: "Apr", Sales: 1398},
	{Month: "May", Sales: 9800},
	{Month: "Jun", Sales: 3908},
	{Month: "Jul", Sales: 4800},
	{Month: "Aug", Sales: 3800},
}
