package vm

// Sample programs shared by the tests.

const progFibonacci = `# a = 0
push 0
store 0

# b = 1
push 1
store 1

# i = 0
push 0
store 2

# c = a + b
.label
load 0
load 1
add
store 3

# print(c)
load 3
print

# a = b
load 1
store 0

# b = c
load 3
store 1

# i++
load 2
push 1
add
store 2

# goto .label if i<20
push 20
load 2
sub
jumpif .label
`

const progCall = `push 1
call .fun
print

push 2
call .fun
print

push 3
call .fun
print

halt

.fun
push 10
add
return
`

const progPrimes = `# print 2
push 2
print

# i = 3
push 3
store 2

.main

# if isPrime(i): print i
load 2
call .isprime
jumpifnot .notaprime

load 2
print

# i += 2
.notaprime
load 2
push 2
add
store 2

# loop if i < 100
push 100
load 2
sub
jumpif .main

halt

# isPrime() function
.isprime

# n = stack[-1]
store 0

# j = 2
push 2
store 1

.loop

# if n%j == 0
load 0
load 1
mod
push 0
eq
jumpifnot .continue

# return false
push 0
return

# j += 1
.continue
push 1
load 1
add
store 1

# if n == j, return true
load 0
load 1
eq

jumpifnot .loop

push 1
return
`

const progCount = `push 1
store 0
.label

load 0
print

load 0
push 1
add
store 0

push 10
load 0
sub
jumpif .label
`
