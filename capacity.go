package fixedstring

// Buffer is the set of backing arrays a String can use. A backing array of
// N+1 bytes gives a String of capacity N; the extra byte holds the
// terminator. Named types with one of these underlying types are accepted.
// The supported capacities are listed in the package documentation.
type Buffer interface {
	~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte | ~[6]byte | ~[7]byte | ~[8]byte | ~[9]byte |
		~[10]byte | ~[11]byte | ~[12]byte | ~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte | ~[17]byte |
		~[18]byte | ~[19]byte | ~[20]byte | ~[21]byte | ~[22]byte | ~[23]byte | ~[24]byte | ~[25]byte |
		~[26]byte | ~[27]byte | ~[28]byte | ~[29]byte | ~[30]byte | ~[31]byte | ~[32]byte | ~[33]byte |
		~[41]byte | ~[49]byte | ~[57]byte | ~[65]byte | ~[81]byte | ~[97]byte | ~[101]byte | ~[129]byte |
		~[193]byte | ~[256]byte | ~[257]byte | ~[385]byte | ~[513]byte | ~[769]byte | ~[1025]byte | ~[2049]byte |
		~[4097]byte
}

// Named buffers for the supported capacities: String[Cap100] holds at most
// 100 bytes.
type (
	Cap1    [2]byte
	Cap2    [3]byte
	Cap3    [4]byte
	Cap4    [5]byte
	Cap5    [6]byte
	Cap6    [7]byte
	Cap7    [8]byte
	Cap8    [9]byte
	Cap9    [10]byte
	Cap10   [11]byte
	Cap11   [12]byte
	Cap12   [13]byte
	Cap13   [14]byte
	Cap14   [15]byte
	Cap15   [16]byte
	Cap16   [17]byte
	Cap17   [18]byte
	Cap18   [19]byte
	Cap19   [20]byte
	Cap20   [21]byte
	Cap21   [22]byte
	Cap22   [23]byte
	Cap23   [24]byte
	Cap24   [25]byte
	Cap25   [26]byte
	Cap26   [27]byte
	Cap27   [28]byte
	Cap28   [29]byte
	Cap29   [30]byte
	Cap30   [31]byte
	Cap31   [32]byte
	Cap32   [33]byte
	Cap40   [41]byte
	Cap48   [49]byte
	Cap56   [57]byte
	Cap64   [65]byte
	Cap80   [81]byte
	Cap96   [97]byte
	Cap100  [101]byte
	Cap128  [129]byte
	Cap192  [193]byte
	Cap255  [256]byte
	Cap256  [257]byte
	Cap384  [385]byte
	Cap512  [513]byte
	Cap768  [769]byte
	Cap1024 [1025]byte
	Cap2048 [2049]byte
	Cap4096 [4097]byte
)

// CapacityOf returns the capacity of a String backed by B.
func CapacityOf[B Buffer]() int {
	var b B
	return len(b) - 1
}
