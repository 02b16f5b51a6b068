package types_test

import (
	"fmt"

	"github.com/mesh-intelligence/phonebook/pkg/types"
)

func ExampleDirectory() {
	book := types.NewDirectory()

	john, _ := types.NewRecord("John")
	_ = john.AddPhone("1234567890")
	_ = john.AddPhone("5555555555")
	book.AddRecord(john)

	jane, _ := types.NewRecord("Jane")
	_ = jane.AddPhone("9876543210")
	book.AddRecord(jane)

	fmt.Println(book)

	if r, ok := book.Find("John"); ok {
		_ = r.EditPhone("1234567890", "1112223333")
		fmt.Println(r)
		if p, ok := r.FindPhone("5555555555"); ok {
			fmt.Println(p)
		}
	}

	_ = book.Delete("Jane")
	fmt.Println(book)
	// Output:
	// Name: John, Phones: 1234567890; 5555555555
	// Name: Jane, Phones: 9876543210
	// Name: John, Phones: 5555555555; 1112223333
	// 5555555555
	// Name: John, Phones: 5555555555; 1112223333
}
