package params

const (
	// DefaultBits is the bit length of the default group modulus and of sampled
	// group elements (128-bit security level for finite-field discrete log).
	DefaultBits = 3072

	// MaxSampleIterations bounds every rejection-sampling loop.
	MaxSampleIterations = 255

	// PrimalityRounds is the number of Miller-Rabin rounds used when validating
	// a supplied modulus.
	PrimalityRounds = 20

	// DefaultGenerator is the generator paired with DefaultPrime.
	DefaultGenerator = 2

	// DefaultPrime is the 3072-bit MODP prime (RFC 3526, group 15) in decimal.
	DefaultPrime = "5809605995369958062791915965639201402176612226902900533702900882779736177890990861472094774477339581147373410185646378328043729800750470098210924487866935059164371588168047540943981644516632755067501626434556398193186628990071248660819361205119793693985433297036118232914410171876807536457391277857011849897410207519105333355801121109356897459426271845471397952675959440793493071628394122780510124618488232602464649876850458861245784240929258426287699705312584509625419513463605155428017165714465363094021609290561084025893662561222573202082865797821865270991145082200656978177192827024538990239969175546190770645685893438011714430426409338676314743571154537142031573004276428701433036381801705308659830751190352946025482059931306571004727362479688415574702596946457770284148435989129632853918392117997472632693078113129886487399347796982772784615865232621289656944284216824611318709764535152507354116344703769998514148343807"
)
