package bintuple_test

import (
	"fmt"
	"log"

	"github.com/tuplekv/bintuple"
)

func ExamplePack() {
	key, err := bintuple.Pack(bintuple.NewText("users"), bintuple.NewInteger(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% x\n", key)
	// Output: 02 75 73 65 72 73 00 15 01
}

func ExampleUnpack() {
	segs, err := bintuple.Unpack([]byte{0x02, 'u', 's', 'e', 'r', 's', 0x00, 0x15, 0x01})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(segs)
	// Output: ("users", 1)
}

func ExampleTuple_Append() {
	table := bintuple.New(bintuple.NewText("users"))

	alice, err := table.Append(bintuple.NewInteger(1), bintuple.NewText("alice"))
	if err != nil {
		log.Fatal(err)
	}

	key, err := alice.Pack()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% x\n", key)
	// Output: 02 75 73 65 72 73 00 15 01 02 61 6c 69 63 65 00
}

func ExamplePrefixRange() {
	prefix, err := bintuple.Pack(bintuple.NewText("users"))
	if err != nil {
		log.Fatal(err)
	}

	begin, end := bintuple.PrefixRange(prefix)
	fmt.Printf("% x\n% x\n", begin, end)
	// Output:
	// 02 75 73 65 72 73 00 00
	// 02 75 73 65 72 73 00 ff
}
